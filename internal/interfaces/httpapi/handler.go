package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
	"github.com/riskibarqy/shl-ingest/internal/usecase"
)

type Handler struct {
	referenceSyncService  *usecase.ReferenceSyncService
	referenceQueryService *usecase.ReferenceQueryService
	scheduleIngestService *usecase.ScheduleIngestService
	teamIngestService     *usecase.TeamIngestService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	referenceSyncService *usecase.ReferenceSyncService,
	referenceQueryService *usecase.ReferenceQueryService,
	scheduleIngestService *usecase.ScheduleIngestService,
	teamIngestService *usecase.TeamIngestService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		referenceSyncService:  referenceSyncService,
		referenceQueryService: referenceQueryService,
		scheduleIngestService: scheduleIngestService,
		teamIngestService:     teamIngestService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
