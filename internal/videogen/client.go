package videogen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

const providerName = "reelworker"

// Client drives an external full-video generation worker. Jobs are started
// with one POST and then polled through opaque operation ids; the worker owns
// rendering, we only track the handle.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// compile-time check: *Client must satisfy port.VideoGenerator
var _ port.VideoGenerator = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Provider() string { return providerName }

type startJobRequest struct {
	ProjectID string `json:"project_id"`
	Topic     string `json:"topic"`
	Style     string `json:"style"`
	Script    string `json:"script,omitempty"`
}

type startJobResponse struct {
	OperationID string `json:"operation_id"`
}

func (c *Client) StartJob(ctx context.Context, in port.StartVideoJobInput) (string, error) {
	payload, err := json.Marshal(startJobRequest{
		ProjectID: in.ProjectID,
		Topic:     in.Topic,
		Style:     in.Style,
		Script:    in.Script,
	})
	if err != nil {
		return "", fmt.Errorf("marshal job request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build job request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", project.ErrGeneration, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return "", fmt.Errorf("%w: video worker returned status %d: %s", project.ErrGeneration, resp.StatusCode, body)
	}

	var out startJobResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode job response: %v", project.ErrGeneration, err)
	}
	if out.OperationID == "" {
		return "", fmt.Errorf("%w: video worker returned no operation id", project.ErrGeneration)
	}
	return out.OperationID, nil
}

type pollResponse struct {
	Done     bool   `json:"done"`
	VideoURI string `json:"video_uri"`
	Error    string `json:"error"`
}

func (c *Client) PollOperation(ctx context.Context, operationID string) (port.VideoOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/jobs/"+operationID, nil)
	if err != nil {
		return port.VideoOperation{}, fmt.Errorf("build poll request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return port.VideoOperation{}, fmt.Errorf("%w: %v", project.ErrGeneration, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return port.VideoOperation{}, fmt.Errorf("%w: operation %q", project.ErrNotFound, operationID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return port.VideoOperation{}, fmt.Errorf("%w: video worker returned status %d: %s", project.ErrGeneration, resp.StatusCode, body)
	}

	var out pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return port.VideoOperation{}, fmt.Errorf("%w: decode poll response: %v", project.ErrGeneration, err)
	}
	return port.VideoOperation{Done: out.Done, URI: out.VideoURI, Err: out.Error}, nil
}
