package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get gallery image: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation gallery_images does not exist")) {
		t.Fatalf("expected unrelated error to be reported")
	}
}

func TestValidID(t *testing.T) {
	if validID("not-a-uuid") {
		t.Fatalf("expected garbage id to be rejected")
	}
	if !validID("0b9c3a5e-6f55-4c4b-9d53-0d5f8a3b2f11") {
		t.Fatalf("expected uuid to be accepted")
	}
}

func TestNullableStringRoundTrip(t *testing.T) {
	if got := stringPtr(nullableString(nil)); got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}
	url := "https://cdn.example/gallery/performers/1-a.png"
	got := stringPtr(nullableString(&url))
	if got == nil || *got != url {
		t.Fatalf("unexpected value %v", got)
	}
	if got == &url {
		t.Fatalf("expected a copy, not the caller's pointer")
	}
}

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestAffectedOne(t *testing.T) {
	ok, err := affectedOne(fakeResult(0), "delete news")
	if err != nil || ok {
		t.Fatalf("expected false for zero rows, got %v %v", ok, err)
	}
	ok, err = affectedOne(fakeResult(1), "delete news")
	if err != nil || !ok {
		t.Fatalf("expected true for one row, got %v %v", ok, err)
	}
}

func TestIsSessionConflict(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: visitorSessionIndex}
	if !isSessionConflict(fmt.Errorf("exec: %w", dup)) {
		t.Fatalf("expected wrapped unique violation on the session index to match")
	}
	if isSessionConflict(&pq.Error{Code: "23505", Constraint: "visitor_logs_pkey"}) {
		t.Fatalf("expected primary key conflict to be reported")
	}
	if isSessionConflict(fmt.Errorf("connection reset")) {
		t.Fatalf("expected unrelated error to be reported")
	}
}
