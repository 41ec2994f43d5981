// Package cache decorates the reference repositories with a TTL cache.
// Reference data changes only when a sync runs, so reads are served
// from memory and every sync invalidates the affected keys.
package cache

import (
	"context"

	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
	basecache "github.com/riskibarqy/shl-ingest/internal/platform/cache"
)

const (
	seasonListKey     = "season:list"
	seasonCurrentKey  = "season:current"
	seriesListKey     = "series:list"
	seriesByCodeKey   = "series:code:"
	gameTypeListKey   = "game-type:list"
	gameTypeByCodeKey = "game-type:code:"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetCurrent(ctx context.Context) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonCurrentKey, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetCurrent(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) UpsertAll(ctx context.Context, items []season.Season) error {
	if err := r.next.UpsertAll(ctx, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, seasonListKey)
	r.cache.Delete(ctx, seasonCurrentKey)
	return nil
}

type cachedSeason struct {
	value  season.Season
	exists bool
}

type SeriesRepository struct {
	next  series.Repository
	cache *basecache.Store
}

func NewSeriesRepository(next series.Repository, cache *basecache.Store) *SeriesRepository {
	return &SeriesRepository{next: next, cache: cache}
}

func (r *SeriesRepository) GetByCode(ctx context.Context, code string) (series.Series, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, seriesByCodeKey+code, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return cachedSeries{value: item, exists: exists}, nil
	})
	if err != nil {
		return series.Series{}, false, err
	}

	cached, _ := v.(cachedSeries)
	return cached.value, cached.exists, nil
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	v, err := r.cache.GetOrLoad(ctx, seriesListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]series.Series(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]series.Series)
	return append([]series.Series(nil), items...), nil
}

func (r *SeriesRepository) UpsertAll(ctx context.Context, items []series.Series) error {
	if err := r.next.UpsertAll(ctx, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, seriesListKey)
	for _, item := range items {
		r.cache.Delete(ctx, seriesByCodeKey+item.Code)
	}
	return nil
}

type cachedSeries struct {
	value  series.Series
	exists bool
}

type GameTypeRepository struct {
	next  gametype.Repository
	cache *basecache.Store
}

func NewGameTypeRepository(next gametype.Repository, cache *basecache.Store) *GameTypeRepository {
	return &GameTypeRepository{next: next, cache: cache}
}

func (r *GameTypeRepository) GetByCode(ctx context.Context, code string) (gametype.GameType, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, gameTypeByCodeKey+code, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return cachedGameType{value: item, exists: exists}, nil
	})
	if err != nil {
		return gametype.GameType{}, false, err
	}

	cached, _ := v.(cachedGameType)
	return cached.value, cached.exists, nil
}

func (r *GameTypeRepository) List(ctx context.Context) ([]gametype.GameType, error) {
	v, err := r.cache.GetOrLoad(ctx, gameTypeListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]gametype.GameType(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]gametype.GameType)
	return append([]gametype.GameType(nil), items...), nil
}

func (r *GameTypeRepository) UpsertAll(ctx context.Context, items []gametype.GameType) error {
	if err := r.next.UpsertAll(ctx, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, gameTypeListKey)
	for _, item := range items {
		r.cache.Delete(ctx, gameTypeByCodeKey+item.Code)
	}
	return nil
}

type cachedGameType struct {
	value  gametype.GameType
	exists bool
}
