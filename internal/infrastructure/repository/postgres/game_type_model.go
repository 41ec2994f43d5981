package postgres

import "time"

type gameTypeTableModel struct {
	UUID      string    `db:"game_type_uuid"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type gameTypeInsertModel struct {
	UUID string `db:"game_type_uuid"`
	Code string `db:"code"`
	Name string `db:"name"`
}
