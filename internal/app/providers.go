package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cinevoice/internal/api/server"
	v1routes "cinevoice/internal/api/v1/routes"
	"cinevoice/internal/api/v1/services"
	"cinevoice/internal/app/assistant"
	"cinevoice/internal/app/logging"
	"cinevoice/internal/app/media"
	"cinevoice/internal/app/metrics"
	"cinevoice/internal/app/repository"
	"cinevoice/internal/app/repository/pg"
	"cinevoice/internal/app/repository/sqlite"
	"cinevoice/internal/config"
)

// ProvideAppLogger builds the zap logger used by the app layer
func ProvideAppLogger(cfg *config.Config) *zap.Logger {
	return logging.MustNewLogger(cfg.Server.Environment != "production")
}

// ProvideAPILogger builds the slog logger used by the HTTP layer
func ProvideAPILogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// ProvideRegistry creates the process metrics registry
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideMetrics registers all application metrics
func ProvideMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(registry)
}

// ProvideExchangeDAO selects the history backend from configuration
func ProvideExchangeDAO(cfg *config.Config) (repository.ExchangeDAO, error) {
	switch cfg.DB.Backend {
	case "postgres":
		db, err := pg.NewPostgresDB(pg.ConnectionString(
			cfg.DB.PGHost, cfg.DB.PGPort, cfg.DB.PGUser, cfg.DB.PGPassword, cfg.DB.PGName))
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	case "sqlite":
		return sqlite.NewSQLiteDB(cfg.DB.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_BACKEND %q", cfg.DB.Backend)
	}
}

// ProvideMediaStore selects the artifact backend from configuration
func ProvideMediaStore(cfg *config.Config, logger *zap.Logger) (media.Store, error) {
	switch cfg.Media.Backend {
	case "minio":
		return media.NewMinioStore(context.Background(), media.MinioConfig{
			Endpoint:  cfg.Media.MinIOURL,
			AccessKey: cfg.Media.MinIOKey,
			SecretKey: cfg.Media.MinIOSecret,
			Bucket:    cfg.Media.MinIOBucket,
			UseSSL:    cfg.Media.MinIOSSL,
		}, logger)
	case "disk":
		return media.NewDiskStore(cfg.Media.Root, logger)
	default:
		return nil, fmt.Errorf("unknown MEDIA_BACKEND %q", cfg.Media.Backend)
	}
}

// ProvideAssistant builds the vendor-backed assistant
func ProvideAssistant(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) assistant.Assistant {
	return assistant.NewGeminiAssistant(cfg.Models, m, logger)
}

// ProvideServiceContainer wires all API services
func ProvideServiceContainer(
	a assistant.Assistant,
	store media.Store,
	dao repository.ExchangeDAO,
	m *metrics.Metrics,
	logger *zap.Logger,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		ConversationService:   services.NewConversationService(a, store, dao, m, logger),
		RecommendationService: services.NewRecommendationService(a),
		ExchangeService:       services.NewExchangeService(dao),
	}
}

// ProvideServer assembles the HTTP server
func ProvideServer(
	cfg *config.Config,
	container *v1routes.ServiceContainer,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *server.Server {
	return server.NewServer(cfg.Server, container, m, registry, logger)
}
