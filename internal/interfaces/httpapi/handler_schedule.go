package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/shl-ingest/internal/usecase"
)

type scheduleIngestRequest struct {
	SeasonUUID   string `validate:"omitempty,max=64"`
	SeriesUUID   string `validate:"omitempty,max=64"`
	GameTypeUUID string `validate:"omitempty,max=64"`
	GamePlace    string `validate:"omitempty,max=32"`
	Played       string `validate:"omitempty,max=8"`
}

type scheduleIngestResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SeasonUUID   string `json:"seasonUuid"`
	SeriesUUID   string `json:"seriesUuid"`
	GameTypeUUID string `json:"gameTypeUuid"`
	GameCount    int    `json:"gameCount"`
	Timestamp    string `json:"timestamp"`
}

func (h *Handler) IngestSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestSchedule")
	defer span.End()

	query := r.URL.Query()
	req := scheduleIngestRequest{
		SeasonUUID:   strings.TrimSpace(query.Get("seasonUuid")),
		SeriesUUID:   strings.TrimSpace(query.Get("seriesUuid")),
		GameTypeUUID: strings.TrimSpace(query.Get("gameTypeUuid")),
		GamePlace:    strings.TrimSpace(query.Get("gamePlace")),
		Played:       strings.TrimSpace(query.Get("played")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scheduleIngestService.Ingest(ctx, usecase.ScheduleIngestInput{
		SeasonUUID:   req.SeasonUUID,
		SeriesUUID:   req.SeriesUUID,
		GameTypeUUID: req.GameTypeUUID,
		GamePlace:    req.GamePlace,
		Played:       req.Played,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule ingest failed",
			"season_uuid", req.SeasonUUID,
			"series_uuid", req.SeriesUUID,
			"game_type_uuid", req.GameTypeUUID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, scheduleIngestResponse{
		Success:      true,
		Message:      fmt.Sprintf("Fetched and saved %d games to bronze.shl_game_schedule", result.GameCount),
		SeasonUUID:   result.SeasonUUID,
		SeriesUUID:   result.SeriesUUID,
		GameTypeUUID: result.GameTypeUUID,
		GameCount:    result.GameCount,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
