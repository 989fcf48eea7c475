package jobs

import (
	"context"
	"time"
)

// Job is a periodic task the scheduler can run
type Job interface {
	Name() string
	NextRun(now time.Time) time.Time
	Run(ctx context.Context) error
}
