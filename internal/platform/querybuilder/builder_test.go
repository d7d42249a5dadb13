package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "phase_number").
		From("phases").
		Where(Eq("tournament_id", "t1"), IsNull("deleted_at")).
		OrderBy("phase_number").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, phase_number FROM phases WHERE tournament_id = $1 AND deleted_at IS NULL ORDER BY phase_number LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderSuffix(t *testing.T) {
	query, args, err := Select("team_id", "points").
		From("standings").
		Where(Eq("tournament_id", "t1"), Eq("team_id", "a"), Eq("group_number", 0)).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_id, points FROM standings WHERE tournament_id = $1 AND team_id = $2 AND group_number = $3 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"t1", "a", 0}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("standing_applied_matches").
		Columns("match_id", "tournament_id").
		Values("m1", "t1").
		Suffix("ON CONFLICT (match_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO standing_applied_matches (match_id, tournament_id) VALUES ($1, $2) ON CONFLICT (match_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "m1" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("phases").
		Set("status", "active").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE phases SET status = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "active" || args[1] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderExprArgs(t *testing.T) {
	query, args, err := Update("standings").
		SetExpr("points", "points + ?", 3).
		Set("updated_at", "now").
		Where(Eq("team_id", "a")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE standings SET points = points + $1, updated_at = $2 WHERE team_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{3, "now", "a"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").Where(Eq("phase_id", "p1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches WHERE phase_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

type testRow struct {
	ID      string `db:"id"`
	Round   int    `db:"round"`
	Ignored string `db:"-"`
	hidden  string
}

func TestInsertModels(t *testing.T) {
	rows := []testRow{{ID: "m1", Round: 1, hidden: "x"}, {ID: "m2", Round: 2}}
	query, args, err := InsertModels("matches", rows, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO matches (id, round) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"m1", 1, "m2", 2}) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[testRow]("matches", nil, ""); err == nil {
		t.Fatalf("expected error for empty models")
	}
}

func TestUpdateModel(t *testing.T) {
	query, args, err := UpdateModel("matches", testRow{ID: "m1", Round: 3}, []string{"id"}, Eq("id", "m1"))
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}

	wantQuery := "UPDATE matches SET round = $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{3, "m1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
