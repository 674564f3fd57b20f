// Package app implements the application layer for cxxcmd.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cxxcmd/internal/adapters/linear"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cxxcmd/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cxxcmd/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports"
	"go.trai.ch/zerr"
)

// WatcherFactory creates a file watcher for watch mode.
type WatcherFactory func(logger ports.Logger) (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	discoverer ports.CompilerDiscoverer
	executor   ports.Executor
	loader     ports.ConfigLoader
	logger     ports.Logger
	tracer     ports.Tracer

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	newWatcher WatcherFactory
	getwd      func() (string, error)
}

// New creates a new App instance.
func New(
	discoverer ports.CompilerDiscoverer,
	executor ports.Executor,
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		discoverer: discoverer,
		executor:   executor,
		loader:     loader,
		logger:     log,
		tracer:     tracer,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		newWatcher: func(log ports.Logger) (ports.Watcher, error) {
			return watcher.NewWatcher(log, watcher.DefaultWindow)
		},
		getwd: os.Getwd,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the linear output streams.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWatcherFactory replaces the file watcher used by watch mode.
func (a *App) WithWatcherFactory(f WatcherFactory) *App {
	a.newWatcher = f
	return a
}

// WithWorkDir pins the working directory instead of asking the OS.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// SetJSONLogs switches the logger to JSON records when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Shutdown flushes the tracer.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

func (a *App) renderer() *linear.Renderer {
	return linear.NewRenderer(a.stdout, a.stderr)
}

func (a *App) workDir() (string, error) {
	cwd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetWorkingDir.Error())
	}
	return cwd, nil
}

// usePTY toggles pseudo-terminal execution on executors that support it.
func (a *App) usePTY(enable bool) {
	if e, ok := a.executor.(*shell.Executor); ok {
		e.WithPTY(enable)
	}
}
