package gametype

import "context"

// Repository describes game-type persistence needs from use cases.
type Repository interface {
	GetByCode(ctx context.Context, code string) (GameType, bool, error)
	List(ctx context.Context) ([]GameType, error)
	UpsertAll(ctx context.Context, items []GameType) error
}
