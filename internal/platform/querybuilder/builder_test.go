package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "image_url").
		From("gallery_images").
		Where(IsTrue("show_on_homepage"), Eq("alt_text", "toss")).
		OrderBy("created_at DESC").
		Limit(7).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, image_url FROM gallery_images WHERE show_on_homepage IS TRUE AND alt_text = $1 ORDER BY created_at DESC LIMIT 7"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "toss" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_OnConflictUpdate(t *testing.T) {
	query, args, err := InsertInto("points_table").
		Columns("team_name", "played", "points").
		Values("Darbhanga Kings", 3, 6).
		OnConflictUpdate("team_name", "updated_at = NOW()").
		Returning("team_name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO points_table (team_name, played, points) VALUES ($1, $2, $3) " +
		"ON CONFLICT (team_name) DO UPDATE SET played = EXCLUDED.played, points = EXCLUDED.points, updated_at = NOW() " +
		"RETURNING team_name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Darbhanga Kings" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("storage_orphans").
		Set("last_error", "timeout").
		SetExpr("attempts", "attempts + ?", 1).
		Where(Eq("id", "o1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE storage_orphans SET last_error = $1, attempts = attempts + $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != 1 || args[2] != "o1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateAndDeleteRequireWhere(t *testing.T) {
	if _, _, err := Update("news").Set("title", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
	if _, _, err := DeleteFrom("news").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestDeleteBuilder_Returning(t *testing.T) {
	query, args, err := DeleteFrom("gallery_images").
		Where(Eq("id", "g1")).
		Returning("id", "image_url").
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM gallery_images WHERE id = $1 RETURNING id, image_url" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "g1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInDegradesToFalse(t *testing.T) {
	query, _, err := Select("id").From("news").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM news WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

type alertRow struct {
	ID        string    `db:"id,readonly"`
	Message   string    `db:"message"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at,readonly"`
	internal  string
}

func TestInsertModel_SkipsReadonlyColumns(t *testing.T) {
	query, args, err := InsertModel("alerts", alertRow{Message: "Rain delay", IsActive: true, internal: "x"}).
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if query != "INSERT INTO alerts (message, is_active) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Rain delay" || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("alerts", 42).ToSQL(); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestInsertBuilder_PreserveKeepsStoredColumns(t *testing.T) {
	query, _, err := InsertInto("top_performers").
		Columns("id", "category", "name").
		Values("p1", "orange", "Ravi").
		OnConflictUpdate("category").
		Preserve("id").
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO top_performers (id, category, name) VALUES ($1, $2, $3) " +
		"ON CONFLICT (category) DO UPDATE SET name = EXCLUDED.name RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}
