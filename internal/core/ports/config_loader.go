package ports

import "go.trai.ch/plansync/internal/core/domain"

// ConfigLoader resolves the application configuration for a working
// directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and parses the configuration, starting at cwd and
	// walking upward. A missing configuration file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
