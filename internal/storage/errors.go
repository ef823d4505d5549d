package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", project.ErrNotFound, resp.Code)
	default:
		// catch everything else
		return fmt.Errorf("storage: %w", err)
	}
}
