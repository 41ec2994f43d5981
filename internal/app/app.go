package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/shl-ingest/external/shl"
	"github.com/riskibarqy/shl-ingest/internal/config"
	"github.com/riskibarqy/shl-ingest/internal/domain/gametype"
	"github.com/riskibarqy/shl-ingest/internal/domain/season"
	"github.com/riskibarqy/shl-ingest/internal/domain/series"
	cachedrepo "github.com/riskibarqy/shl-ingest/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/shl-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/shl-ingest/internal/interfaces/httpapi"
	"github.com/riskibarqy/shl-ingest/internal/platform/cache"
	"github.com/riskibarqy/shl-ingest/internal/platform/logging"
	"github.com/riskibarqy/shl-ingest/internal/platform/resilience"
	"github.com/riskibarqy/shl-ingest/internal/usecase"
)

// App owns the HTTP server and the resources it was wired with.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	var seasonRepo season.Repository = postgres.NewSeasonRepository(db)
	var seriesRepo series.Repository = postgres.NewSeriesRepository(db)
	var gameTypeRepo gametype.Repository = postgres.NewGameTypeRepository(db)
	scheduleRepo := postgres.NewScheduleSnapshotRepository(db)
	teamSnapshotRepo := postgres.NewTeamSnapshotRepository(db)

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		seasonRepo = cachedrepo.NewSeasonRepository(seasonRepo, store)
		seriesRepo = cachedrepo.NewSeriesRepository(seriesRepo, store)
		gameTypeRepo = cachedrepo.NewGameTypeRepository(gameTypeRepo, store)
	}

	shlClient := shl.NewClient(shl.ClientConfig{
		BaseURL: cfg.SHLBaseURL,
		Timeout: cfg.SHLTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SHLCircuitEnabled,
			FailureThreshold: cfg.SHLCircuitFailureCount,
			OpenTimeout:      cfg.SHLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SHLCircuitHalfOpenMaxReq,
		},
	})

	referenceSyncSvc := usecase.NewReferenceSyncService(
		shlClient,
		seasonRepo,
		seriesRepo,
		gameTypeRepo,
		usecase.ReferenceSyncConfig{
			PrimaryLocale:   cfg.SHLPrimaryLocale,
			SecondaryLocale: cfg.SHLSecondaryLocale,
		},
		logger,
	)
	referenceQuerySvc := usecase.NewReferenceQueryService(seasonRepo, seriesRepo, gameTypeRepo)
	scheduleIngestSvc := usecase.NewScheduleIngestService(
		shlClient,
		seasonRepo,
		seriesRepo,
		gameTypeRepo,
		scheduleRepo,
		usecase.ScheduleIngestConfig{
			DefaultSeriesCode:   cfg.SHLDefaultSeriesCode,
			DefaultGameTypeCode: cfg.SHLDefaultGameTypeCode,
		},
		logger,
	)
	teamIngestSvc := usecase.NewTeamIngestService(shlClient, teamSnapshotRepo, logger)

	handler := httpapi.NewHandler(referenceSyncSvc, referenceQuerySvc, scheduleIngestSvc, teamIngestSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
