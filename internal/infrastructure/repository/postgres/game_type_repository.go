package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	qb "github.com/riskibarqy/shl-ingest/internal/platform/querybuilder"
)

const gameTypesTable = "reference.game_types"

type GameTypeRepository struct {
	db *sqlx.DB
}

func NewGameTypeRepository(db *sqlx.DB) *GameTypeRepository {
	return &GameTypeRepository{db: db}
}

func (r *GameTypeRepository) GetByCode(ctx context.Context, code string) (gametype.GameType, bool, error) {
	query, args, err := qb.Select("*").
		From(gameTypesTable).
		Where(qb.Eq("code", code)).
		Limit(1).
		ToSQL()
	if err != nil {
		return gametype.GameType{}, false, fmt.Errorf("build get game type by code query: %w", err)
	}

	var row gameTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gametype.GameType{}, false, nil
		}
		return gametype.GameType{}, false, fmt.Errorf("get game type by code: %w", err)
	}

	return gameTypeFromRow(row), true, nil
}

func (r *GameTypeRepository) List(ctx context.Context) ([]gametype.GameType, error) {
	query, args, err := qb.Select("*").
		From(gameTypesTable).
		OrderBy("code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game types query: %w", err)
	}

	var rows []gameTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}

	out := make([]gametype.GameType, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameTypeFromRow(row))
	}

	return out, nil
}

func (r *GameTypeRepository) UpsertAll(ctx context.Context, items []gametype.GameType) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert game types: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := gameTypeInsertModel{
			UUID: item.UUID,
			Code: item.Code,
			Name: item.Name,
		}

		query, args, err := qb.InsertModel(gameTypesTable, insertModel, `ON CONFLICT (game_type_uuid)
DO UPDATE SET
    code = EXCLUDED.code,
    name = EXCLUDED.name,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert game type query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert game type uuid=%s: %w", item.UUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert game types tx: %w", err)
	}

	return nil
}

func gameTypeFromRow(row gameTypeTableModel) gametype.GameType {
	return gametype.GameType{
		UUID: row.UUID,
		Code: row.Code,
		Name: row.Name,
	}
}
