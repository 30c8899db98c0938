//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"cinevoice/internal/api/server"
	"cinevoice/internal/config"
)

// InitializeServer assembles the full API server from configuration
func InitializeServer(cfg *config.Config) (*server.Server, error) {
	wire.Build(
		ProvideAppLogger,
		ProvideAPILogger,
		ProvideRegistry,
		ProvideMetrics,
		ProvideExchangeDAO,
		ProvideMediaStore,
		ProvideAssistant,
		ProvideServiceContainer,
		ProvideServer,
	)
	return nil, nil
}
