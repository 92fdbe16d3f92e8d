package ports

import "go.trai.ch/peek/internal/core/domain"

// ConfigLoader loads run settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings at path. A missing file yields the defaults.
	Load(path string) (domain.Settings, error)
}
