package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/schedule"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
)

type ScheduleIngestConfig struct {
	// DefaultSeriesCode and DefaultGameTypeCode pick the reference rows
	// used when a caller omits the matching identifier.
	DefaultSeriesCode   string
	DefaultGameTypeCode string
}

type ScheduleIngestInput struct {
	SeasonUUID   string
	SeriesUUID   string
	GameTypeUUID string
	GamePlace    string
	Played       string
}

type ScheduleIngestResult struct {
	SeasonUUID   string
	SeriesUUID   string
	GameTypeUUID string
	GameCount    int
}

type ResolvedScheduleParams struct {
	SeasonUUID   string
	SeriesUUID   string
	GameTypeUUID string
}

// ScheduleIngestService fetches the upstream game schedule and replaces
// the bronze snapshot for the resolved season.
type ScheduleIngestService struct {
	provider     SHLProvider
	seasonRepo   season.Repository
	seriesRepo   series.Repository
	gameTypeRepo gametype.Repository
	snapshotRepo schedule.Repository
	cfg          ScheduleIngestConfig
	logger       *logging.Logger
}

func NewScheduleIngestService(
	provider SHLProvider,
	seasonRepo season.Repository,
	seriesRepo series.Repository,
	gameTypeRepo gametype.Repository,
	snapshotRepo schedule.Repository,
	cfg ScheduleIngestConfig,
	logger *logging.Logger,
) *ScheduleIngestService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DefaultSeriesCode == "" {
		cfg.DefaultSeriesCode = "SHL"
	}
	if cfg.DefaultGameTypeCode == "" {
		cfg.DefaultGameTypeCode = "regular"
	}

	return &ScheduleIngestService{
		provider:     provider,
		seasonRepo:   seasonRepo,
		seriesRepo:   seriesRepo,
		gameTypeRepo: gameTypeRepo,
		snapshotRepo: snapshotRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// ResolveDefaults fills in missing identifiers from the reference
// schema. Caller-supplied values pass through verbatim, with no
// trimming and no existence checks; the first missing default fails
// fast.
func (s *ScheduleIngestService) ResolveDefaults(ctx context.Context, in ScheduleIngestInput) (ResolvedScheduleParams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleIngestService.ResolveDefaults")
	defer span.End()

	resolved := ResolvedScheduleParams{
		SeasonUUID:   in.SeasonUUID,
		SeriesUUID:   in.SeriesUUID,
		GameTypeUUID: in.GameTypeUUID,
	}

	if resolved.SeasonUUID == "" {
		current, found, err := s.seasonRepo.GetCurrent(ctx)
		if err != nil {
			return ResolvedScheduleParams{}, fmt.Errorf("select current season: %w", err)
		}
		if !found {
			return ResolvedScheduleParams{}, fmt.Errorf("%w: no current season found in database, run reference sync first", ErrNoReferenceDefault)
		}
		resolved.SeasonUUID = current.UUID
	}

	if resolved.SeriesUUID == "" {
		item, found, err := s.seriesRepo.GetByCode(ctx, s.cfg.DefaultSeriesCode)
		if err != nil {
			return ResolvedScheduleParams{}, fmt.Errorf("select series code=%s: %w", s.cfg.DefaultSeriesCode, err)
		}
		if !found {
			return ResolvedScheduleParams{}, fmt.Errorf("%w: no %s series found in database, run reference sync first", ErrNoReferenceDefault, s.cfg.DefaultSeriesCode)
		}
		resolved.SeriesUUID = item.UUID
	}

	if resolved.GameTypeUUID == "" {
		item, found, err := s.gameTypeRepo.GetByCode(ctx, s.cfg.DefaultGameTypeCode)
		if err != nil {
			return ResolvedScheduleParams{}, fmt.Errorf("select game type code=%s: %w", s.cfg.DefaultGameTypeCode, err)
		}
		if !found {
			return ResolvedScheduleParams{}, fmt.Errorf("%w: no %s game type found in database, run reference sync first", ErrNoReferenceDefault, s.cfg.DefaultGameTypeCode)
		}
		resolved.GameTypeUUID = item.UUID
	}

	return resolved, nil
}

func (s *ScheduleIngestService) Ingest(ctx context.Context, in ScheduleIngestInput) (ScheduleIngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleIngestService.Ingest")
	defer span.End()

	resolved, err := s.ResolveDefaults(ctx, in)
	if err != nil {
		return ScheduleIngestResult{}, err
	}

	raw, err := s.provider.FetchGameSchedule(ctx, ScheduleQuery{
		SeasonUUID:   resolved.SeasonUUID,
		SeriesUUID:   resolved.SeriesUUID,
		GameTypeUUID: resolved.GameTypeUUID,
		GamePlace:    in.GamePlace,
		Played:       in.Played,
	})
	if err != nil {
		return ScheduleIngestResult{}, fmt.Errorf("fetch game schedule: %w", err)
	}

	// An absent body and an empty sequence are both reported as not
	// found; the provider answers either way when nothing matches.
	if isEmptyDocument(raw) {
		return ScheduleIngestResult{}, fmt.Errorf("%w: no games found for the given parameters", ErrNotFound)
	}

	if err := s.snapshotRepo.Upsert(ctx, schedule.Snapshot{
		SeasonUUID: resolved.SeasonUUID,
		RawJSON:    string(raw),
	}); err != nil {
		return ScheduleIngestResult{}, fmt.Errorf("upsert schedule snapshot season_uuid=%s: %w", resolved.SeasonUUID, err)
	}

	result := ScheduleIngestResult{
		SeasonUUID:   resolved.SeasonUUID,
		SeriesUUID:   resolved.SeriesUUID,
		GameTypeUUID: resolved.GameTypeUUID,
		GameCount:    countGames(raw),
	}
	s.logger.InfoContext(ctx, "game schedule ingested",
		"season_uuid", result.SeasonUUID,
		"series_uuid", result.SeriesUUID,
		"game_type_uuid", result.GameTypeUUID,
		"game_count", result.GameCount,
	)

	return result, nil
}

// countGames is deliberately forgiving: any document without a gameInfo
// array counts as zero games rather than an error.
func countGames(raw []byte) int {
	var doc struct {
		GameInfo []json.RawMessage `json:"gameInfo"`
	}
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return 0
	}
	return len(doc.GameInfo)
}

func isEmptyDocument(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	switch string(trimmed) {
	case "null", "[]":
		return true
	}
	return false
}
