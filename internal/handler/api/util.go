package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/logger"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteUsecaseError translates the error taxonomy of the use case layer into
// status codes: missing resources are 404, exhausted quotas 429, caller
// mistakes 422, everything else 500.
func WriteUsecaseError(w http.ResponseWriter, msg string, err error) {
	var ve *project.ValidationError
	switch {
	case errors.Is(err, project.ErrNotFound):
		WriteError(w, http.StatusNotFound, msg+": not found", nil)
	case errors.Is(err, project.ErrRateLimited):
		WriteError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later", nil)
	case errors.As(err, &ve):
		WriteError(w, http.StatusUnprocessableEntity, ve.Reason, nil)
	default:
		WriteError(w, http.StatusInternalServerError, msg, err)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
