package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("*").
		From("reference.seasons").
		Where(Eq("is_current", true)).
		OrderBy("code DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM reference.seasons WHERE is_current = $1 ORDER BY code DESC LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderWithConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("reference.series").
		Columns("uuid", "code", "name").
		Values("uuid-1", "SHL", "SHL").
		Suffix("ON CONFLICT (uuid) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO reference.series (uuid, code, name) VALUES ($1, $2, $3) ON CONFLICT (uuid) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "uuid-1" || args[1] != "SHL" || args[2] != "SHL" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("reference.seasons").
		Set("is_current", false).
		SetExpr("updated_at", "NOW()").
		Where(Eq("is_current", true)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE reference.seasons SET is_current = $1, updated_at = NOW() WHERE is_current = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != false || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExprRewritesPlaceholders(t *testing.T) {
	query, args, err := Update("reference.seasons").
		SetExpr("name", "COALESCE(?, name)", "2025/2026").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE reference.seasons SET name = COALESCE($1, name)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "2025/2026" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
