package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
)

// ReferenceQueryService exposes read access to the synced reference
// rows for downstream consumers.
type ReferenceQueryService struct {
	seasonRepo   season.Repository
	seriesRepo   series.Repository
	gameTypeRepo gametype.Repository
}

func NewReferenceQueryService(seasonRepo season.Repository, seriesRepo series.Repository, gameTypeRepo gametype.Repository) *ReferenceQueryService {
	return &ReferenceQueryService{
		seasonRepo:   seasonRepo,
		seriesRepo:   seriesRepo,
		gameTypeRepo: gameTypeRepo,
	}
}

func (s *ReferenceQueryService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceQueryService.ListSeasons")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *ReferenceQueryService) ListSeries(ctx context.Context) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceQueryService.ListSeries")
	defer span.End()

	items, err := s.seriesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return items, nil
}

func (s *ReferenceQueryService) ListGameTypes(ctx context.Context) ([]gametype.GameType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceQueryService.ListGameTypes")
	defer span.End()

	items, err := s.gameTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}
	return items, nil
}
