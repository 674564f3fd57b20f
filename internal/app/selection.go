package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPreferredCompiler names the environment variable holding the preferred compiler.
const EnvPreferredCompiler = "CXX"

// Selection holds the choices made on the command line. Zero values and nil
// pointers fall back to the profile, then to the built-in defaults.
type Selection struct {
	ConfigPath   string
	Names        []string
	Compiler     string
	Standard     string
	Optimization string
	Debug        *bool
	Output       *string
	Sources      []string
	TTY          bool
}

// session is a resolved selection: the discovered compilers and the
// configuration seeded from them.
type session struct {
	compilers []domain.CompilerOption
	config    domain.BuildConfiguration
	workDir   string
}

func (a *App) resolve(ctx context.Context, sel Selection) (*session, error) {
	cwd, err := a.workDir()
	if err != nil {
		return nil, err
	}

	profile, err := a.loader.Load(cwd, sel.ConfigPath)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.Profile{}
	}

	std, err := domain.LookupStandard(firstNonEmpty(sel.Standard, profile.Standard, domain.DefaultStandard()))
	if err != nil {
		return nil, err
	}

	opt, err := domain.LookupOptimization(firstNonEmpty(sel.Optimization, profile.Optimization, domain.DefaultOptimization().Flag))
	if err != nil {
		return nil, err
	}

	s := &session{workDir: cwd}

	switch {
	case sel.Compiler != "":
		// An explicit compiler is used as given, discovered or not.
		s.compilers = []domain.CompilerOption{domain.NewCompilerOption(sel.Compiler, domain.UnknownVersion)}
	default:
		names := sel.Names
		if len(names) == 0 {
			names = profile.CompilerNames()
		}
		s.compilers, err = a.discover(ctx, names)
		if err != nil {
			return nil, err
		}
		s.compilers = preferCompiler(s.compilers, firstNonEmpty(profile.Compiler, os.Getenv(EnvPreferredCompiler)))
	}

	cfg := domain.NewBuildConfiguration(s.compilers[0])
	cfg.Standard = std
	cfg.Optimization = opt
	cfg.Debug = profile.Debug
	if sel.Debug != nil {
		cfg.Debug = *sel.Debug
	}
	cfg.Output = profile.Output
	if sel.Output != nil {
		cfg.Output = *sel.Output
	}

	sources := sel.Sources
	if len(sources) == 0 {
		sources = profile.Sources
	}
	for _, src := range sources {
		cfg.AddSource(domain.RelativizeSource(cwd, src))
	}

	s.config = cfg
	return s, nil
}

func (a *App) discover(ctx context.Context, names []string) ([]domain.CompilerOption, error) {
	ctx, span := a.tracer.Start(ctx, "discover")
	defer span.End()
	span.SetAttribute("names", names)

	compilers, err := a.discoverer.Discover(ctx, names)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "names", names)
	}
	if len(compilers) == 0 {
		compilers = []domain.CompilerOption{domain.NotFoundCompiler()}
	}

	span.SetAttribute("found", len(compilers))
	return compilers, nil
}

// preferCompiler moves the first compiler matching want to the front. want
// matches a full path or an executable name.
func preferCompiler(compilers []domain.CompilerOption, want string) []domain.CompilerOption {
	if want == "" {
		return compilers
	}

	idx := slices.IndexFunc(compilers, func(c domain.CompilerOption) bool {
		return !c.IsPlaceholder() && (c.Path == want || filepath.Base(c.Path) == want)
	})
	if idx <= 0 {
		return compilers
	}

	out := make([]domain.CompilerOption, 0, len(compilers))
	out = append(out, compilers[idx])
	out = append(out, compilers[:idx]...)
	return append(out, compilers[idx+1:]...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
