package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// ActivityRecorder accepts audit events for asynchronous persistence.
// Implementations must not block request handling beyond transient
// backpressure; recording is best-effort.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityRepository persists audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
