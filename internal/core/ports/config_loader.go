package ports

import "go.trai.ch/cxxcmd/internal/core/domain"

// ConfigLoader loads the optional profile with initial selections.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile at path. An empty path looks for the default
	// profile in dir and returns an empty profile when there is none.
	Load(dir, path string) (*domain.Profile, error)
}
