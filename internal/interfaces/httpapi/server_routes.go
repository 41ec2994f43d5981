package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReferenceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/reference/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/reference/series", handler.ListSeries)
	mux.HandleFunc("GET /v1/reference/game-types", handler.ListGameTypes)
}

func registerIngestRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/reference/sync", handler.SyncReference)
	mux.HandleFunc("POST /v1/games/schedule/ingest", handler.IngestSchedule)
	mux.HandleFunc("POST /v1/teams/{teamUUID}/info/ingest", handler.IngestTeamInfo)
	mux.HandleFunc("POST /v1/teams/{teamUUID}/roster/ingest", handler.IngestTeamRoster)
}
