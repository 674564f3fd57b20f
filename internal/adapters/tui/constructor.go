// Package tui provides the interactive form for assembling and running a compiler command.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"go.trai.ch/cxxcmd/internal/core/domain"
)

const defaultLogHeight = 10

// RunFunc executes the configuration's rendered command.
type RunFunc func(ctx context.Context, cfg domain.BuildConfiguration) (domain.ExecutionResult, error)

// Options seed a new Model.
type Options struct {
	// Compilers is the discovery result. An empty list is treated as "not found".
	Compilers []domain.CompilerOption
	// Config is the initial configuration. Its compiler is matched by path.
	Config domain.BuildConfiguration
	// WorkDir is the directory new sources are made relative to.
	WorkDir string
	// Run executes a configuration.
	Run RunFunc
}

// NewModel creates a form model from opts.
func NewModel(ctx context.Context, opts Options) *Model {
	compilers := opts.Compilers
	if len(compilers) == 0 {
		compilers = []domain.CompilerOption{domain.NotFoundCompiler()}
	}

	cfg := opts.Config.Clone()
	compilerIdx := max(slices.IndexFunc(compilers, func(c domain.CompilerOption) bool {
		return c.Path == cfg.Compiler.Path
	}), 0)
	cfg.Compiler = compilers[compilerIdx]

	if cfg.Standard == "" {
		cfg.Standard = domain.DefaultStandard()
	}
	if cfg.Optimization.Flag == "" {
		cfg.Optimization = domain.DefaultOptimization()
	}

	output := textinput.New()
	output.Prompt = ""
	output.Placeholder = "no -o clause"
	output.SetValue(cfg.Output)

	prompt := textinput.New()
	prompt.Prompt = "add source: "
	prompt.Placeholder = "path/to/file.cpp"

	term := NewVterm()
	term.SetHeight(defaultLogHeight)

	m := &Model{
		ctx:         ctx,
		run:         opts.Run,
		WorkDir:     opts.WorkDir,
		Compilers:   compilers,
		CompilerIdx: compilerIdx,
		StdIdx:      max(slices.Index(domain.Standards(), cfg.Standard), 0),
		OptIdx: max(slices.IndexFunc(domain.Optimizations(), func(o domain.OptimizationOption) bool {
			return o.Flag == cfg.Optimization.Flag
		}), 0),
		Config:      cfg,
		OutputInput: output,
		SourceInput: prompt,
		Spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		Term:        term,
	}
	m.refresh()
	return m
}
