package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/shl-ingest/internal/domain/schedule"
	qb "github.com/riskibarqy/shl-ingest/internal/platform/querybuilder"
)

const gameScheduleTable = "bronze.shl_game_schedule"

type ScheduleSnapshotRepository struct {
	db *sqlx.DB
}

func NewScheduleSnapshotRepository(db *sqlx.DB) *ScheduleSnapshotRepository {
	return &ScheduleSnapshotRepository{db: db}
}

// Upsert keeps one snapshot per season, last write wins.
func (r *ScheduleSnapshotRepository) Upsert(ctx context.Context, snapshot schedule.Snapshot) error {
	insertModel := scheduleSnapshotInsertModel{
		SeasonUUID: snapshot.SeasonUUID,
		RawJSON:    snapshot.RawJSON,
	}

	query, args, err := qb.InsertModel(gameScheduleTable, insertModel, `ON CONFLICT (season_uuid)
DO UPDATE SET
    raw_data = EXCLUDED.raw_data,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert schedule snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert schedule snapshot: %w", err)
	}

	return nil
}

type scheduleSnapshotInsertModel struct {
	SeasonUUID string `db:"season_uuid"`
	RawJSON    string `db:"raw_data"`
}
