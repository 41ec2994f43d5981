package series

import "context"

// Repository describes series persistence needs from use cases.
type Repository interface {
	GetByCode(ctx context.Context, code string) (Series, bool, error)
	List(ctx context.Context) ([]Series, error)
	UpsertAll(ctx context.Context, items []Series) error
}
