package dispatch

import (
	"context"

	"github.com/google/uuid"
)

// Dispatcher hands a created session to the background pipeline. The job
// descriptor is the session id only; workers reload state from the database.
type Dispatcher interface {
	DispatchReportJob(ctx context.Context, sessionID uuid.UUID) error
	Close() error
}
