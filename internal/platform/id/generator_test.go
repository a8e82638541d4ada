package id

import "testing"

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := g.NewID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	if !Valid(a) {
		t.Fatalf("expected generated id to be valid: %s", a)
	}
	if Valid("not-a-uuid") {
		t.Fatalf("expected garbage id to be invalid")
	}
}
