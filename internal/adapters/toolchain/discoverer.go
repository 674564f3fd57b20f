// Package toolchain discovers C++ compilers installed on the host.
package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLookup is the path-discovery utility used to enumerate binaries.
	DefaultLookup = "which"
	// VersionFlag is passed to every candidate to obtain its version banner.
	VersionFlag = "--version"
)

// Discoverer implements ports.CompilerDiscoverer by shelling out to a
// path-discovery utility and querying every candidate for its version.
type Discoverer struct {
	logger ports.Logger
	lookup string
}

var _ ports.CompilerDiscoverer = (*Discoverer)(nil)

// NewDiscoverer creates a Discoverer using DefaultLookup.
func NewDiscoverer(logger ports.Logger) *Discoverer {
	return &Discoverer{
		logger: logger,
		lookup: DefaultLookup,
	}
}

// WithLookup overrides the path-discovery utility.
func (d *Discoverer) WithLookup(lookup string) *Discoverer {
	d.lookup = lookup
	return d
}

// Discover lists every binary matching names on the search path, in order.
// It returns the "not found" placeholder when nothing matches, and an error
// only when the path-discovery utility itself cannot run.
func (d *Discoverer) Discover(ctx context.Context, names []string) ([]domain.CompilerOption, error) {
	var paths []string
	seen := make(map[string]struct{})

	for _, name := range names {
		found, err := d.locate(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		d.logger.Warn("no compiler found", "names", strings.Join(names, ","))
		return []domain.CompilerOption{domain.NotFoundCompiler()}, nil
	}

	options := make([]domain.CompilerOption, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			version, err := queryVersion(gctx, path)
			if err != nil {
				d.logger.Warn("compiler did not report a version", "compiler", path, "error", err)
				version = domain.UnknownVersion
			}
			options[i] = domain.NewCompilerOption(path, version)
			return nil
		})
	}
	_ = g.Wait()

	return options, nil
}

// locate runs "<lookup> -a <name>". A non-zero exit means nothing was found.
func (d *Discoverer) locate(ctx context.Context, name string) ([]string, error) {
	out, err := exec.CommandContext(ctx, d.lookup, "-a", name).Output() //nolint:gosec // fixed utility, name from config
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, nil
		}
		wrapped := zerr.Wrap(err, domain.ErrDiscoveryFailed.Error())
		return nil, zerr.With(wrapped, "lookup", d.lookup)
	}

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

func queryVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, VersionFlag).Output() //nolint:gosec // path comes from discovery
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionQueryFailed.Error()), "compiler", path)
	}
	version := parseVersion(out)
	if version == "" {
		return "", zerr.With(domain.ErrVersionQueryFailed, "compiler", path)
	}
	return version, nil
}

// versionField is the position of the version label in the first banner line.
const versionField = 2

// parseVersion returns the token at versionField in the first line of a
// version banner, e.g. "13.2.0" for "g++ (GCC) 13.2.0". Banners whose vendor
// string contains spaces yield a different token; that is accepted.
func parseVersion(banner []byte) string {
	line, _, _ := bytes.Cut(banner, []byte("\n"))
	fields := strings.Fields(string(line))
	if len(fields) <= versionField {
		return ""
	}
	return fields[versionField]
}
