package schedule

import "context"

// Repository persists bronze schedule snapshots keyed by season uuid.
type Repository interface {
	Upsert(ctx context.Context, item Snapshot) error
}
