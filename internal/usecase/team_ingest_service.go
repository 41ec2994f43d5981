package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/shl-ingest/internal/domain/teamdata"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
)

var teamUUIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

type TeamIngestResult struct {
	TeamUUID   string
	EntityType string
	// PositionGroups is only populated for roster ingestion; the roster
	// endpoint answers with one array entry per position group.
	PositionGroups int
}

// TeamIngestService captures per-team documents from the provider into
// the bronze snapshot table, one row per team and entity type.
type TeamIngestService struct {
	provider     SHLProvider
	snapshotRepo teamdata.Repository
	logger       *logging.Logger
}

func NewTeamIngestService(provider SHLProvider, snapshotRepo teamdata.Repository, logger *logging.Logger) *TeamIngestService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamIngestService{
		provider:     provider,
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

func (s *TeamIngestService) IngestTeamInfo(ctx context.Context, teamUUID string) (TeamIngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamIngestService.IngestTeamInfo")
	defer span.End()

	if err := validateTeamUUID(teamUUID); err != nil {
		return TeamIngestResult{}, err
	}

	raw, err := s.provider.FetchTeamInfo(ctx, teamUUID)
	if err != nil {
		return TeamIngestResult{}, fmt.Errorf("fetch team info team_uuid=%s: %w", teamUUID, err)
	}
	if isEmptyDocument(raw) {
		return TeamIngestResult{}, fmt.Errorf("%w: no team information found for the given UUID", ErrNotFound)
	}

	if err := s.upsertSnapshot(ctx, teamUUID, teamdata.EntityTeamInfo, raw); err != nil {
		return TeamIngestResult{}, err
	}

	result := TeamIngestResult{TeamUUID: teamUUID, EntityType: teamdata.EntityTeamInfo}
	s.logger.InfoContext(ctx, "team info ingested", "team_uuid", teamUUID)

	return result, nil
}

func (s *TeamIngestService) IngestTeamRoster(ctx context.Context, teamUUID string) (TeamIngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamIngestService.IngestTeamRoster")
	defer span.End()

	if err := validateTeamUUID(teamUUID); err != nil {
		return TeamIngestResult{}, err
	}

	raw, err := s.provider.FetchTeamRoster(ctx, teamUUID)
	if err != nil {
		return TeamIngestResult{}, fmt.Errorf("fetch team roster team_uuid=%s: %w", teamUUID, err)
	}
	if isEmptyDocument(raw) {
		return TeamIngestResult{}, fmt.Errorf("%w: no players found for the given team UUID", ErrNotFound)
	}

	if err := s.upsertSnapshot(ctx, teamUUID, teamdata.EntityTeamRoster, raw); err != nil {
		return TeamIngestResult{}, err
	}

	result := TeamIngestResult{
		TeamUUID:       teamUUID,
		EntityType:     teamdata.EntityTeamRoster,
		PositionGroups: countPositionGroups(raw),
	}
	s.logger.InfoContext(ctx, "team roster ingested",
		"team_uuid", teamUUID,
		"position_groups", result.PositionGroups,
	)

	return result, nil
}

func (s *TeamIngestService) upsertSnapshot(ctx context.Context, teamUUID, entityType string, raw []byte) error {
	err := s.snapshotRepo.Upsert(ctx, teamdata.Snapshot{
		TeamUUID:   teamUUID,
		EntityType: entityType,
		RawJSON:    string(raw),
	})
	if err != nil {
		return fmt.Errorf("upsert team snapshot team_uuid=%s entity=%s: %w", teamUUID, entityType, err)
	}
	return nil
}

func validateTeamUUID(teamUUID string) error {
	if teamUUID == "" || !teamUUIDPattern.MatchString(teamUUID) {
		return fmt.Errorf("%w: invalid team UUID format", ErrInvalidInput)
	}
	return nil
}

// countPositionGroups counts top level array entries. Any other
// document shape counts as zero.
func countPositionGroups(raw []byte) int {
	var groups []json.RawMessage
	if err := sonic.Unmarshal(raw, &groups); err != nil {
		return 0
	}
	return len(groups)
}
