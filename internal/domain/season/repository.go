package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	GetCurrent(ctx context.Context) (Season, bool, error)
	List(ctx context.Context) ([]Season, error)
	// UpsertAll replaces the catalog in one transaction. Stale is_current
	// flags are cleared before the new rows land, so at most one row keeps
	// the flag afterwards.
	UpsertAll(ctx context.Context, items []Season) error
}
