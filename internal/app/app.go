package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/assetid/internal/config"
	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/assetid/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/assetid/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/assetid/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/assetid/internal/interfaces/httpapi"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/riskibarqy/assetid/internal/platform/logging"
	"github.com/riskibarqy/assetid/internal/platform/resilience"
	"github.com/riskibarqy/assetid/internal/usecase"
)

// NewHTTPServer wires storage, services and the router. The returned cleanup
// closes the database pool, if one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repo, cleanup, err := newAssetRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	generator := id.NewRandomGenerator(nil)
	assetSvc := usecase.NewAssetService(repo, generator)
	idSvc := usecase.NewIDService(generator, cfg.IDMintMaxBatch)

	handler := httpapi.NewHandler(assetSvc, idSvc, cfg.AssetImportWorkers, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newAssetRepository(cfg config.Config, logger *logging.Logger) (asset.Repository, func() error, error) {
	var (
		repo    asset.Repository
		cleanup = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = db.Close
		repo = postgres.NewAssetRepository(db)

		if cfg.DBCircuitBreaker.Enabled {
			repo = resilient.NewAssetRepository(repo, newDBBreaker(cfg, logger))
		}
		logger.Info("asset storage ready",
			"driver", config.StoragePostgres,
			"db_name", dbNameFromURL(cfg.DBURL),
			"breaker", cfg.DBCircuitBreaker,
		)
	default:
		repo = memory.NewAssetRepository(memory.SeedAssets())
		logger.Info("asset storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		repo = cache.NewAssetRepository(repo, cache.NewAssetStore(cfg.CacheTTL))
	}

	return repo, cleanup, nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, dbURLOptions{
		BinaryParameters: cfg.DBBinaryParameters,
		ApplicationName:  cfg.ServiceName,
	})

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return db, nil
}

func newDBBreaker(cfg config.Config, logger *logging.Logger) *resilience.CircuitBreaker {
	return resilience.NewCircuitBreaker("postgres", cfg.DBCircuitBreaker,
		resilience.WithFailureClassifier(resilient.IsDependencyFailure),
		resilience.WithStateChangeHook(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
		}),
	)
}
