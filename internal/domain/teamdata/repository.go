package teamdata

import "context"

// Repository persists bronze team snapshots.
type Repository interface {
	Upsert(ctx context.Context, item Snapshot) error
}
