package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.WarnContext(context.Background(), "admin action failed", "action", "delete-gallery", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["action"] != "delete-gallery" {
		t.Fatalf("unexpected action field: %+v", fields)
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %+v", fields)
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept: %+v", fields)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        LevelInfo,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s got %s", raw, want, got)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}

func TestWithTee_FansOut(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := New(LevelError, WithTee(core), WithServiceFields("league-portal", "test", "dev"))

	logger.Info("visible to tee only")

	if logs.Len() != 1 {
		t.Fatalf("expected tee to receive entry, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["service"]; got != "league-portal" {
		t.Fatalf("expected service field, got %v", got)
	}
}
