package port

import "context"

// StartVideoJobInput describes a full-video generation request sent to the
// external provider.
type StartVideoJobInput struct {
	ProjectID string
	Topic     string
	Style     string
	Script    string
}

// VideoOperation is a snapshot of an outstanding provider job.
type VideoOperation struct {
	Done bool
	URI  string
	Err  string
}

// VideoGenerator drives an external video provider through opaque operation
// handles that are polled until completion.
type VideoGenerator interface {
	StartJob(ctx context.Context, in StartVideoJobInput) (operationID string, err error)
	PollOperation(ctx context.Context, operationID string) (VideoOperation, error)
	Provider() string
}
