package app

import (
	"context"
	"errors"

	"go.trai.ch/cxxcmd/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Watch re-runs the command whenever a source file changes.
	Watch bool
	// Timings prints span durations after each execution.
	Timings bool
}

// Compilers prints the discovered compilers.
func (a *App) Compilers(ctx context.Context, sel Selection) error {
	sel.Compiler = ""
	s, err := a.resolve(ctx, sel)
	if err != nil {
		return err
	}
	a.renderer().Compilers(s.compilers)
	return nil
}

// Render prints the command for the selection without running it.
func (a *App) Render(ctx context.Context, sel Selection) error {
	s, err := a.resolve(ctx, sel)
	if err != nil {
		return err
	}
	a.renderer().Rendered(s.config.Render())
	return nil
}

// Run executes the command for the selection and prints its output.
// A non-zero compiler exit status is returned as *domain.CompilationError.
func (a *App) Run(ctx context.Context, sel Selection, opts RunOptions) error {
	s, err := a.resolve(ctx, sel)
	if err != nil {
		return err
	}
	if err := s.config.Validate(); err != nil {
		return err
	}

	a.usePTY(sel.TTY)
	r := a.renderer()

	if !opts.Watch {
		return a.runOnce(ctx, r, s.config, opts)
	}
	return a.watch(ctx, r, s.config, opts)
}

func (a *App) runOnce(ctx context.Context, r *linear.Renderer, cfg domain.BuildConfiguration, opts RunOptions) error {
	command := cfg.Render()
	r.Command(command)

	res, err := a.execute(ctx, cfg)
	if err != nil {
		return err
	}
	r.Result(res)

	if opts.Timings {
		r.Timings(a.tracer.Timings())
	}

	if !res.Succeeded() {
		return &domain.CompilationError{ExitCode: res.ExitCode}
	}
	return nil
}

// execute runs the rendered command inside a traced span.
func (a *App) execute(ctx context.Context, cfg domain.BuildConfiguration) (domain.ExecutionResult, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ExecutionResult{}, err
	}

	command := cfg.Render()

	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttribute("command", command)
	span.SetAttribute("sources", cfg.Sources)

	res, err := a.executor.Run(ctx, command)
	if err != nil {
		span.RecordError(err)
		return res, zerr.With(err, "command", command)
	}

	span.SetAttribute("exit_code", res.ExitCode)
	if !res.Succeeded() {
		span.RecordError(&domain.CompilationError{ExitCode: res.ExitCode})
	}
	return res, nil
}

// watch runs the command once, then again after every change to a source file
// until ctx is cancelled. Compiler failures are reported but do not stop watching.
func (a *App) watch(ctx context.Context, r *linear.Renderer, cfg domain.BuildConfiguration, opts RunOptions) error {
	w, err := a.newWatcher(a.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		if err := w.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	if err := w.Start(ctx, cfg.Sources); err != nil {
		return err
	}

	if err := a.runWatched(ctx, r, cfg, opts); err != nil {
		return err
	}

	for paths := range w.Events() {
		r.Changed(paths)
		if err := a.runWatched(ctx, r, cfg, opts); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) runWatched(ctx context.Context, r *linear.Renderer, cfg domain.BuildConfiguration, opts RunOptions) error {
	err := a.runOnce(ctx, r, cfg, opts)
	var compileErr *domain.CompilationError
	if errors.As(err, &compileErr) {
		return nil
	}
	return err
}
