package usecase

import "context"

// SHLProvider is the outbound port to the SHL API. Raw-document methods
// return the body verbatim so bronze storage keeps what the provider
// actually sent.
type SHLProvider interface {
	FetchFilterCatalog(ctx context.Context) (FilterCatalog, error)
	FetchGameSchedule(ctx context.Context, q ScheduleQuery) ([]byte, error)
	FetchTeamInfo(ctx context.Context, teamUUID string) ([]byte, error)
	FetchTeamRoster(ctx context.Context, teamUUID string) ([]byte, error)
}

// FilterCatalog is the upstream season/series/game-type catalog plus
// the provider's default selection.
type FilterCatalog struct {
	Seasons   []CatalogEntry
	Series    []CatalogEntry
	GameTypes []CatalogEntry
	Defaults  CatalogDefaults
}

type CatalogEntry struct {
	UUID  string
	Code  string
	Names []CatalogName
}

type CatalogName struct {
	Language    string
	Translation string
}

type CatalogDefaults struct {
	SeasonUUID   string
	SeriesUUID   string
	GameTypeUUID string
}

type ScheduleQuery struct {
	SeasonUUID   string
	SeriesUUID   string
	GameTypeUUID string
	GamePlace    string
	Played       string
}
