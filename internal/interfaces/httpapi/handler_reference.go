package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
)

type referenceSyncResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Stats     referenceSyncStats `json:"stats"`
	Timestamp string             `json:"timestamp"`
}

type referenceSyncStats struct {
	Seasons       int    `json:"seasons"`
	Series        int    `json:"series"`
	GameTypes     int    `json:"gameTypes"`
	CurrentSeason string `json:"currentSeason"`
}

func (h *Handler) SyncReference(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncReference")
	defer span.End()

	stats, err := h.referenceSyncService.Sync(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reference sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, referenceSyncResponse{
		Success: true,
		Message: "Reference data synced successfully",
		Stats: referenceSyncStats{
			Seasons:       stats.Seasons,
			Series:        stats.Series,
			GameTypes:     stats.GameTypes,
			CurrentSeason: stats.CurrentSeason,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

type seasonDTO struct {
	UUID      string `json:"uuid"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"isCurrent"`
}

type codedEntryDTO struct {
	UUID string `json:"uuid"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.referenceQueryService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeries")
	defer span.End()

	items, err := h.referenceQueryService.ListSeries(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list series failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]codedEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seriesToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListGameTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameTypes")
	defer span.End()

	items, err := h.referenceQueryService.ListGameTypes(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list game types failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]codedEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameTypeToDTO(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		UUID:      v.UUID,
		Code:      v.Code,
		Name:      v.Name,
		IsCurrent: v.IsCurrent,
	}
}

func seriesToDTO(v series.Series) codedEntryDTO {
	return codedEntryDTO{
		UUID: v.UUID,
		Code: v.Code,
		Name: v.Name,
	}
}

func gameTypeToDTO(v gametype.GameType) codedEntryDTO {
	return codedEntryDTO{
		UUID: v.UUID,
		Code: v.Code,
		Name: v.Name,
	}
}
