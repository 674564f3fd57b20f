package domain

import "go.trai.ch/zerr"

var (
	// ErrDiscoveryFailed is returned when the path-discovery utility cannot be started.
	ErrDiscoveryFailed = zerr.New("failed to run compiler discovery")

	// ErrVersionQueryFailed is returned when a compiler does not answer its version query.
	ErrVersionQueryFailed = zerr.New("failed to query compiler version")

	// ErrInvalidStandard is returned when a language standard is not one of the supported standards.
	ErrInvalidStandard = zerr.New("unsupported language standard")

	// ErrInvalidOptimization is returned when an optimization flag is not one of -O0 to -O3.
	ErrInvalidOptimization = zerr.New("unsupported optimization level")

	// ErrNoSources is returned when execution is requested without any source files.
	ErrNoSources = zerr.New("no source files selected")

	// ErrNoCompiler is returned when execution is requested while no compiler was discovered.
	ErrNoCompiler = zerr.New("no compiler available")

	// ErrShellStartFailed is returned when the shell running the compiler cannot be started.
	ErrShellStartFailed = zerr.New("failed to start shell")

	// ErrCompilationFailed is returned by the CLI when the compiler exits with a non-zero status.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrConfigReadFailed is returned when the profile file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read profile")

	// ErrConfigParseFailed is returned when the profile file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse profile")

	// ErrFailedToGetWorkingDir is returned when the working directory cannot be determined.
	ErrFailedToGetWorkingDir = zerr.New("failed to get working directory")

	// ErrWatchFailed is returned when source files cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch source files")
)
