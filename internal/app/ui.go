package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cxxcmd/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/cxxcmd/internal/adapters/tui"      //nolint:depguard // Wired in app layer
)

// UI opens the interactive form seeded with the selection.
func (a *App) UI(ctx context.Context, sel Selection) error {
	s, err := a.resolve(ctx, sel)
	if err != nil {
		return err
	}

	a.usePTY(sel.TTY)

	model := tui.NewModel(ctx, tui.Options{
		Compilers: s.compilers,
		Config:    s.config,
		WorkDir:   s.workDir,
		Run:       a.execute,
	})

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
	_, err = tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Default opens the form on an interactive terminal and prints the rendered
// command otherwise. mode is one of "auto", "ui" or "linear".
func (a *App) Default(ctx context.Context, sel Selection, mode string) error {
	if detector.ResolveMode(detector.DetectEnvironment(), mode) == detector.ModeInteractive {
		return a.UI(ctx, sel)
	}
	return a.Render(ctx, sel)
}
