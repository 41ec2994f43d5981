package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapFieldsPairsAndErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Info("schedule ingested",
		"season_uuid", "qcz-3NvSZ2Cmh",
		"game_count", 364,
		"error", errors.New("boom"),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["season_uuid"] != "qcz-3NvSZ2Cmh" {
		t.Fatalf("season_uuid = %v", fields["season_uuid"])
	}
	if fields["game_count"] != int64(364) {
		t.Fatalf("game_count = %v", fields["game_count"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("error = %v", fields["error"])
	}
}

func TestZapFieldsOddArgs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Info("dangling key", "team_uuid")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["team_uuid"]; !ok {
		t.Fatal("expected dangling key recorded with nil value")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no panic expected")
	if err := logger.Sync(); err != nil {
		t.Fatalf("nil sync: %v", err)
	}
	if logger.With("k", "v") == nil {
		t.Fatal("With on nil logger should return a usable logger")
	}
}

func TestNamedAddsLoggerName(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core)).Named("httpapi")

	logger.Info("request served")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "httpapi" {
		t.Fatalf("logger name = %q", entries[0].LoggerName)
	}
}
