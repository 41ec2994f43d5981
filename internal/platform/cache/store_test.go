package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStoreGetOrLoadCachesValue(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "2025/2026", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(ctx, "seasons:list", loader)
		if err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
		if v != "2025/2026" {
			t.Fatalf("value = %v", v)
		}
	}

	if loads != 1 {
		t.Fatalf("loader ran %d times, want 1", loads)
	}
}

func TestStoreGetOrLoadDoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("db down")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(ctx, "series:list", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	v, err := store.GetOrLoad(ctx, "series:list", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != "ok" {
		t.Fatalf("value = %v", v)
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	store := NewStore(30 * time.Second)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "game-types:list", "regular")

	if _, ok := store.Get(ctx, "game-types:list"); !ok {
		t.Fatal("fresh entry should be present")
	}

	now = now.Add(31 * time.Second)
	if _, ok := store.Get(ctx, "game-types:list"); ok {
		t.Fatal("expired entry should be evicted")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "seasons:current", "qcz-3NvSZ2Cmh")
	store.Delete(ctx, "seasons:current")

	if _, ok := store.Get(ctx, "seasons:current"); ok {
		t.Fatal("deleted entry should be gone")
	}
}
