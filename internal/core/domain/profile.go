package domain

// ProfileFileName is the profile looked up in the working directory when none is given.
const ProfileFileName = ".cxxcmd.yaml"

// Profile holds initial selections read from a profile file. Empty fields
// leave the built-in defaults in place.
type Profile struct {
	// Compilers are the executable names to discover.
	Compilers []string
	// Compiler is the preferred compiler path or executable name.
	Compiler     string
	Standard     string
	Optimization string
	Debug        bool
	Output       string
	Sources      []string
	// Path is the file the profile was read from, empty for the zero profile.
	Path string
}

// CompilerNames returns the executable names to discover.
func (p *Profile) CompilerNames() []string {
	if p == nil || len(p.Compilers) == 0 {
		return DefaultCompilerNames
	}
	return p.Compilers
}
