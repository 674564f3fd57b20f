package ports

import (
	"context"

	"go.trai.ch/cxxcmd/internal/core/domain"
)

// Executor runs rendered commands through a shell.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes command with stderr redirected into stdout and blocks until it exits.
	//
	// A non-zero exit status is reported through the result, not as an error.
	// An error is returned only when the shell itself cannot be started.
	Run(ctx context.Context, command string) (domain.ExecutionResult, error)
}
