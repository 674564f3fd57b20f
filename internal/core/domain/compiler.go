// Package domain holds the core types of cxxcmd: compiler options, the build
// configuration and the rendering of a configuration into a shell command.
package domain

import "fmt"

// NotFoundDisplay is the label of the placeholder option listed when no compiler is found.
const NotFoundDisplay = "not found"

// UnknownVersion is the version label used when a compiler does not answer its version query.
const UnknownVersion = "unknown"

// DefaultCompilerNames are the executable names searched for when no profile overrides them.
var DefaultCompilerNames = []string{"g++"}

// CompilerOption is a discovered compiler binary.
type CompilerOption struct {
	Display string
	Path    string
}

// NewCompilerOption builds the option shown for the compiler at path with the given version label.
func NewCompilerOption(path, version string) CompilerOption {
	return CompilerOption{
		Display: fmt.Sprintf("%s (%s)", path, version),
		Path:    path,
	}
}

// NotFoundCompiler returns the placeholder option used when discovery finds nothing.
func NotFoundCompiler() CompilerOption {
	return CompilerOption{Display: NotFoundDisplay}
}

// IsPlaceholder reports whether the option is the "not found" placeholder.
func (c CompilerOption) IsPlaceholder() bool {
	return c.Path == ""
}

// String implements fmt.Stringer.
func (c CompilerOption) String() string {
	return c.Display
}
