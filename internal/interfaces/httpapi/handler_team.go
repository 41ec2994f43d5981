package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type teamIngestResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TeamUUID       string `json:"teamUuid"`
	EntityType     string `json:"entityType"`
	PositionGroups *int   `json:"positionGroups,omitempty"`
	Timestamp      string `json:"timestamp"`
}

func (h *Handler) IngestTeamInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeamInfo")
	defer span.End()

	teamUUID := strings.TrimSpace(r.PathValue("teamUUID"))
	result, err := h.teamIngestService.IngestTeamInfo(ctx, teamUUID)
	if err != nil {
		h.logger.WarnContext(ctx, "team info ingest failed", "team_uuid", teamUUID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamIngestResponse{
		Success:    true,
		Message:    fmt.Sprintf("Ingested team info for %s", result.TeamUUID),
		TeamUUID:   result.TeamUUID,
		EntityType: result.EntityType,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) IngestTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeamRoster")
	defer span.End()

	teamUUID := strings.TrimSpace(r.PathValue("teamUUID"))
	result, err := h.teamIngestService.IngestTeamRoster(ctx, teamUUID)
	if err != nil {
		h.logger.WarnContext(ctx, "team roster ingest failed", "team_uuid", teamUUID, "error", err)
		writeError(ctx, w, err)
		return
	}

	positionGroups := result.PositionGroups
	writeJSON(ctx, w, http.StatusOK, teamIngestResponse{
		Success:        true,
		Message:        fmt.Sprintf("Ingested %d position groups for team %s", result.PositionGroups, result.TeamUUID),
		TeamUUID:       result.TeamUUID,
		EntityType:     result.EntityType,
		PositionGroups: &positionGroups,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}
