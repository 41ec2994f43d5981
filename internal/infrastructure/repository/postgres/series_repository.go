package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
	qb "github.com/riskibarqy/shl-ingest/internal/platform/querybuilder"
)

const seriesTable = "reference.series"

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) GetByCode(ctx context.Context, code string) (series.Series, bool, error) {
	query, args, err := qb.Select("*").
		From(seriesTable).
		Where(qb.Eq("code", code)).
		Limit(1).
		ToSQL()
	if err != nil {
		return series.Series{}, false, fmt.Errorf("build get series by code query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, fmt.Errorf("get series by code: %w", err)
	}

	return seriesFromRow(row), true, nil
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	query, args, err := qb.Select("*").
		From(seriesTable).
		OrderBy("code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list series query: %w", err)
	}

	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}

	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, seriesFromRow(row))
	}

	return out, nil
}

func (r *SeriesRepository) UpsertAll(ctx context.Context, items []series.Series) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert series: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := seriesInsertModel{
			UUID: item.UUID,
			Code: item.Code,
			Name: item.Name,
		}

		query, args, err := qb.InsertModel(seriesTable, insertModel, `ON CONFLICT (series_uuid)
DO UPDATE SET
    code = EXCLUDED.code,
    name = EXCLUDED.name,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert series query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert series uuid=%s: %w", item.UUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert series tx: %w", err)
	}

	return nil
}

func seriesFromRow(row seriesTableModel) series.Series {
	return series.Series{
		UUID: row.UUID,
		Code: row.Code,
		Name: row.Name,
	}
}
