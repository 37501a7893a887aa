package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one analysis attempt to execute. Reanalyze jobs carry the attempt
// token claimed synchronously by the caller; upload jobs leave it nil and
// the worker claims one.
type Job struct {
	ContractID  uuid.UUID
	AttemptID   *uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
