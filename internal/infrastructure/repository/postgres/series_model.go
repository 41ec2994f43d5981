package postgres

import "time"

type seriesTableModel struct {
	UUID      string    `db:"series_uuid"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type seriesInsertModel struct {
	UUID string `db:"series_uuid"`
	Code string `db:"code"`
	Name string `db:"name"`
}
