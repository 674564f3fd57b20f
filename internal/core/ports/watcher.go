package ports

import (
	"context"
	"iter"
)

// Watcher reports changes to a set of files.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files.
	Start(ctx context.Context, files []string) error
	// Stop releases all resources. Events terminates afterwards.
	Stop() error
	// Events yields batches of changed paths.
	Events() iter.Seq[[]string]
}
