package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
)

func TestReferenceQuery_ListsDelegateToRepositories(t *testing.T) {
	seasonRepo := &capturingSeasonRepo{upserted: []season.Season{
		{UUID: "season-2025", Code: "2025/2026", IsCurrent: true},
		{UUID: "season-2024", Code: "2024/2025"},
	}}
	seriesRepo := &capturingSeriesRepo{upserted: []series.Series{
		{UUID: "series-shl", Code: "SHL", Name: "SHL"},
	}}
	gameTypeRepo := &capturingGameTypeRepo{upserted: []gametype.GameType{
		{UUID: "gt-regular", Code: "regular", Name: "Regular season"},
	}}

	svc := NewReferenceQueryService(seasonRepo, seriesRepo, gameTypeRepo)
	ctx := context.Background()

	seasons, err := svc.ListSeasons(ctx)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("seasons = %d, want 2", len(seasons))
	}

	seriesItems, err := svc.ListSeries(ctx)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	if len(seriesItems) != 1 || seriesItems[0].Code != "SHL" {
		t.Fatalf("series = %+v", seriesItems)
	}

	gameTypes, err := svc.ListGameTypes(ctx)
	if err != nil {
		t.Fatalf("list game types: %v", err)
	}
	if len(gameTypes) != 1 || gameTypes[0].Code != "regular" {
		t.Fatalf("game types = %+v", gameTypes)
	}
}
