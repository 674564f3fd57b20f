package ports

import (
	"context"

	"go.trai.ch/cxxcmd/internal/core/domain"
)

// CompilerDiscoverer locates compiler executables on the host.
//
//go:generate mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type CompilerDiscoverer interface {
	// Discover returns the compilers found for the given executable names, in
	// search-path order. It never returns an empty list without an error: when
	// nothing is found the single "not found" placeholder is returned.
	Discover(ctx context.Context, names []string) ([]domain.CompilerOption, error)
}
