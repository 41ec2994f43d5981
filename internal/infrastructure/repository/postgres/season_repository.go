package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	qb "github.com/riskibarqy/shl-ingest/internal/platform/querybuilder"
)

const seasonsTable = "reference.seasons"

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetCurrent(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select("*").
		From(seasonsTable).
		Where(qb.Eq("is_current", true)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get current season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get current season: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").
		From(seasonsTable).
		OrderBy("code DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}

// UpsertAll replaces the season reference set in one transaction. Every
// is_current flag is cleared first so the partial unique index never
// sees two current seasons, whatever the incoming rows claim.
func (r *SeasonRepository) UpsertAll(ctx context.Context, seasons []season.Season) error {
	if len(seasons) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert seasons: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update(seasonsTable).
		Set("is_current", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_current", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear current season flags: %w", err)
	}

	for _, item := range seasons {
		insertModel := seasonInsertModel{
			UUID:      item.UUID,
			Code:      item.Code,
			Name:      item.Name,
			IsCurrent: item.IsCurrent,
		}

		query, args, err := qb.InsertModel(seasonsTable, insertModel, `ON CONFLICT (season_uuid)
DO UPDATE SET
    code = EXCLUDED.code,
    name = EXCLUDED.name,
    is_current = EXCLUDED.is_current,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert season uuid=%s: %w", item.UUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert seasons tx: %w", err)
	}

	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		UUID:      row.UUID,
		Code:      row.Code,
		Name:      row.Name,
		IsCurrent: row.IsCurrent,
	}
}
