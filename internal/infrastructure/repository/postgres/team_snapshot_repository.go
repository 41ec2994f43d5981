package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/shl-ingest/internal/domain/teamdata"
	qb "github.com/riskibarqy/shl-ingest/internal/platform/querybuilder"
)

const teamSnapshotsTable = "bronze.shl_team_snapshots"

type TeamSnapshotRepository struct {
	db *sqlx.DB
}

func NewTeamSnapshotRepository(db *sqlx.DB) *TeamSnapshotRepository {
	return &TeamSnapshotRepository{db: db}
}

// Upsert keeps one document per team and entity type, last write wins.
func (r *TeamSnapshotRepository) Upsert(ctx context.Context, snapshot teamdata.Snapshot) error {
	insertModel := teamSnapshotInsertModel{
		TeamUUID:   snapshot.TeamUUID,
		EntityType: snapshot.EntityType,
		RawJSON:    snapshot.RawJSON,
	}

	query, args, err := qb.InsertModel(teamSnapshotsTable, insertModel, `ON CONFLICT (team_uuid, entity_type)
DO UPDATE SET
    raw_data = EXCLUDED.raw_data,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert team snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team snapshot: %w", err)
	}

	return nil
}

type teamSnapshotInsertModel struct {
	TeamUUID   string `db:"team_uuid"`
	EntityType string `db:"entity_type"`
	RawJSON    string `db:"raw_data"`
}
