package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
)

type ReferenceSyncConfig struct {
	// PrimaryLocale wins name resolution; SecondaryLocale is the fallback
	// for series and game types. Seasons fall straight back to the code.
	PrimaryLocale   string
	SecondaryLocale string
}

type ReferenceSyncStats struct {
	Seasons       int
	Series        int
	GameTypes     int
	CurrentSeason string
}

// ReferenceSyncService refreshes the reference schema from the upstream
// filter catalog. Upserts are at-most-once: the first failing write
// aborts the rest and already-written rows stay.
type ReferenceSyncService struct {
	provider     SHLProvider
	seasonRepo   season.Repository
	seriesRepo   series.Repository
	gameTypeRepo gametype.Repository
	cfg          ReferenceSyncConfig
	logger       *logging.Logger
}

func NewReferenceSyncService(
	provider SHLProvider,
	seasonRepo season.Repository,
	seriesRepo series.Repository,
	gameTypeRepo gametype.Repository,
	cfg ReferenceSyncConfig,
	logger *logging.Logger,
) *ReferenceSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PrimaryLocale == "" {
		cfg.PrimaryLocale = "sv"
	}
	if cfg.SecondaryLocale == "" {
		cfg.SecondaryLocale = "en"
	}

	return &ReferenceSyncService{
		provider:     provider,
		seasonRepo:   seasonRepo,
		seriesRepo:   seriesRepo,
		gameTypeRepo: gameTypeRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *ReferenceSyncService) Sync(ctx context.Context) (ReferenceSyncStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.Sync")
	defer span.End()

	catalog, err := s.provider.FetchFilterCatalog(ctx)
	if err != nil {
		return ReferenceSyncStats{}, fmt.Errorf("fetch filter catalog: %w", err)
	}

	seasons := make([]season.Season, 0, len(catalog.Seasons))
	currentSeasonName := "Unknown"
	for _, entry := range catalog.Seasons {
		name := translationFor(entry.Names, s.cfg.PrimaryLocale)
		if name == "" {
			name = entry.Code
		}
		isCurrent := entry.UUID == catalog.Defaults.SeasonUUID
		if isCurrent {
			if translated := translationFor(entry.Names, s.cfg.PrimaryLocale); translated != "" {
				currentSeasonName = translated
			}
		}
		item := season.Season{
			UUID:      entry.UUID,
			Code:      entry.Code,
			Name:      name,
			IsCurrent: isCurrent,
		}
		if err := item.Validate(); err != nil {
			return ReferenceSyncStats{}, fmt.Errorf("invalid season entry uuid=%q: %w", entry.UUID, err)
		}
		seasons = append(seasons, item)
	}
	if err := s.seasonRepo.UpsertAll(ctx, seasons); err != nil {
		return ReferenceSyncStats{}, fmt.Errorf("upsert seasons: %w", err)
	}

	seriesItems := make([]series.Series, 0, len(catalog.Series))
	for _, entry := range catalog.Series {
		item := series.Series{
			UUID: entry.UUID,
			Code: entry.Code,
			Name: s.resolveName(entry),
		}
		if err := item.Validate(); err != nil {
			return ReferenceSyncStats{}, fmt.Errorf("invalid series entry uuid=%q: %w", entry.UUID, err)
		}
		seriesItems = append(seriesItems, item)
	}
	if err := s.seriesRepo.UpsertAll(ctx, seriesItems); err != nil {
		return ReferenceSyncStats{}, fmt.Errorf("upsert series: %w", err)
	}

	gameTypes := make([]gametype.GameType, 0, len(catalog.GameTypes))
	for _, entry := range catalog.GameTypes {
		item := gametype.GameType{
			UUID: entry.UUID,
			Code: entry.Code,
			Name: s.resolveName(entry),
		}
		if err := item.Validate(); err != nil {
			return ReferenceSyncStats{}, fmt.Errorf("invalid game type entry uuid=%q: %w", entry.UUID, err)
		}
		gameTypes = append(gameTypes, item)
	}
	if err := s.gameTypeRepo.UpsertAll(ctx, gameTypes); err != nil {
		return ReferenceSyncStats{}, fmt.Errorf("upsert game types: %w", err)
	}

	stats := ReferenceSyncStats{
		Seasons:       len(seasons),
		Series:        len(seriesItems),
		GameTypes:     len(gameTypes),
		CurrentSeason: currentSeasonName,
	}
	s.logger.InfoContext(ctx, "reference data synced",
		"seasons", stats.Seasons,
		"series", stats.Series,
		"game_types", stats.GameTypes,
		"current_season", stats.CurrentSeason,
	)

	return stats, nil
}

// resolveName applies the three-tier fallback for series and game
// types: primary locale, then secondary locale, then the raw code.
func (s *ReferenceSyncService) resolveName(entry CatalogEntry) string {
	if name := translationFor(entry.Names, s.cfg.PrimaryLocale); name != "" {
		return name
	}
	if name := translationFor(entry.Names, s.cfg.SecondaryLocale); name != "" {
		return name
	}
	return entry.Code
}

func translationFor(names []CatalogName, language string) string {
	for _, name := range names {
		if name.Language == language {
			return name.Translation
		}
	}
	return ""
}
