package domain

import (
	"fmt"
	"time"
)

// ExecutionResult is the outcome of running a rendered command once.
type ExecutionResult struct {
	// Output is the combined stdout and stderr of the command.
	Output string
	// ExitCode is the shell's exit status.
	ExitCode int
	// Duration is the wall time between spawning the shell and its exit.
	Duration time.Duration
}

// Succeeded reports whether the command exited with status zero.
func (r ExecutionResult) Succeeded() bool {
	return r.ExitCode == 0
}

// CompilationError reports that the compiler exited with a non-zero status.
type CompilationError struct {
	ExitCode int
}

// Error implements error.
func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s: exit status %d", ErrCompilationFailed.Error(), e.ExitCode)
}

// Unwrap returns ErrCompilationFailed.
func (e *CompilationError) Unwrap() error {
	return ErrCompilationFailed
}
