package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	basecache "github.com/riskibarqy/shl-ingest/internal/platform/cache"
)

type stubSeasonRepo struct {
	current     season.Season
	listed      []season.Season
	getCalls    int
	listCalls   int
	upsertCalls int
}

func (s *stubSeasonRepo) GetCurrent(context.Context) (season.Season, bool, error) {
	s.getCalls++
	return s.current, s.current.UUID != "", nil
}

func (s *stubSeasonRepo) List(context.Context) ([]season.Season, error) {
	s.listCalls++
	return s.listed, nil
}

func (s *stubSeasonRepo) UpsertAll(_ context.Context, items []season.Season) error {
	s.upsertCalls++
	s.listed = items
	for _, item := range items {
		if item.IsCurrent {
			s.current = item
		}
	}
	return nil
}

func TestSeasonRepositoryCachesReads(t *testing.T) {
	next := &stubSeasonRepo{
		current: season.Season{UUID: "qcz-3NvSZ2Cmh", Code: "2025/2026", IsCurrent: true},
		listed:  []season.Season{{UUID: "qcz-3NvSZ2Cmh", Code: "2025/2026", IsCurrent: true}},
	}
	repo := NewSeasonRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetCurrent(ctx)
		if err != nil || !ok {
			t.Fatalf("GetCurrent: ok=%t err=%v", ok, err)
		}
		if got.UUID != "qcz-3NvSZ2Cmh" {
			t.Fatalf("uuid = %q", got.UUID)
		}
	}
	if next.getCalls != 1 {
		t.Fatalf("backing GetCurrent ran %d times, want 1", next.getCalls)
	}

	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("len(items) = %d", len(items))
		}
	}
	if next.listCalls != 1 {
		t.Fatalf("backing List ran %d times, want 1", next.listCalls)
	}
}

func TestSeasonRepositoryUpsertInvalidates(t *testing.T) {
	next := &stubSeasonRepo{
		current: season.Season{UUID: "old-uuid", Code: "2024/2025", IsCurrent: true},
	}
	repo := NewSeasonRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	if _, _, err := repo.GetCurrent(ctx); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	next.current = season.Season{}
	fresh := []season.Season{{UUID: "new-uuid", Code: "2025/2026", IsCurrent: true}}
	if err := repo.UpsertAll(ctx, fresh); err != nil {
		t.Fatalf("UpsertAll: %v", err)
	}

	got, ok, err := repo.GetCurrent(ctx)
	if err != nil || !ok {
		t.Fatalf("GetCurrent after upsert: ok=%t err=%v", ok, err)
	}
	if got.UUID != "new-uuid" {
		t.Fatalf("uuid after invalidation = %q, want new-uuid", got.UUID)
	}
	if next.getCalls != 2 {
		t.Fatalf("backing GetCurrent ran %d times, want 2", next.getCalls)
	}
}
