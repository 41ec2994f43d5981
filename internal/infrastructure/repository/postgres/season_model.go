package postgres

import "time"

type seasonTableModel struct {
	UUID      string    `db:"season_uuid"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	IsCurrent bool      `db:"is_current"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type seasonInsertModel struct {
	UUID      string `db:"season_uuid"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	IsCurrent bool   `db:"is_current"`
}
