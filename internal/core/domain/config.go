package domain

import (
	"slices"
	"strings"
)

// BuildConfiguration is the full set of user-chosen compile options at a point in time.
type BuildConfiguration struct {
	Compiler     CompilerOption
	Standard     string
	Optimization OptimizationOption
	Debug        bool
	Output       string
	Sources      []string
}

// NewBuildConfiguration returns a configuration using compiler and the default selections.
func NewBuildConfiguration(compiler CompilerOption) BuildConfiguration {
	return BuildConfiguration{
		Compiler:     compiler,
		Standard:     DefaultStandard(),
		Optimization: DefaultOptimization(),
	}
}

// Render returns the shell command for the configuration.
//
// Clause order is fixed: compiler, -std, optimization, -g, -o, sources. Every
// clause is followed by a single space, so the result ends with a space.
// Sources are wrapped in single quotes without any escaping.
func (c BuildConfiguration) Render() string {
	var b strings.Builder

	b.WriteString(c.Compiler.Path)
	b.WriteByte(' ')

	b.WriteString("-std=")
	b.WriteString(c.Standard)
	b.WriteByte(' ')

	b.WriteString(c.Optimization.Flag)
	b.WriteByte(' ')

	if c.Debug {
		b.WriteString("-g ")
	}

	if c.Output != "" {
		b.WriteString("-o ")
		b.WriteString(c.Output)
		b.WriteByte(' ')
	}

	for _, src := range c.Sources {
		b.WriteByte('\'')
		b.WriteString(src)
		b.WriteString("' ")
	}

	return b.String()
}

// CanExecute reports whether the rendered command may be run.
func (c BuildConfiguration) CanExecute() bool {
	return len(c.Sources) > 0 && !c.Compiler.IsPlaceholder()
}

// Validate returns the reason the configuration cannot be executed, if any.
func (c BuildConfiguration) Validate() error {
	if c.Compiler.IsPlaceholder() {
		return ErrNoCompiler
	}
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c BuildConfiguration) Clone() BuildConfiguration {
	c.Sources = slices.Clone(c.Sources)
	return c
}

// AddSource appends a source path. Empty paths are ignored; repeated paths
// are kept and render once per entry.
func (c *BuildConfiguration) AddSource(path string) bool {
	if path == "" {
		return false
	}
	c.Sources = append(c.Sources, path)
	return true
}

// RemoveSource removes the source at index i. Out of range indexes are ignored.
func (c *BuildConfiguration) RemoveSource(i int) {
	if i < 0 || i >= len(c.Sources) {
		return
	}
	c.Sources = slices.Delete(slices.Clone(c.Sources), i, i+1)
}

// ClearSources empties the source list.
func (c *BuildConfiguration) ClearSources() {
	c.Sources = nil
}
