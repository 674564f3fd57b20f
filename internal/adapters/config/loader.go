// Package config loads cxxcmd profiles.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the profile at path. With an empty path the default profile in
// dir is used if it exists; otherwise an empty profile is returned.
func (l *Loader) Load(dir, path string) (*domain.Profile, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, domain.ProfileFileName)
	}

	data, err := os.ReadFile(path) //nolint:gosec // profile path is user-selected
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &domain.Profile{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var dto ProfileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if dto.Version != "" && dto.Version != "1" {
		l.Logger.Warn("unknown profile version, reading it as version 1", "version", dto.Version, "path", path)
	}

	return &domain.Profile{
		Compilers:    dto.Compilers,
		Compiler:     dto.Compiler,
		Standard:     dto.Standard,
		Optimization: dto.Optimization,
		Debug:        dto.Debug,
		Output:       dto.Output,
		Sources:      resolveSources(filepath.Dir(path), dto.Sources),
		Path:         path,
	}, nil
}

// resolveSources makes relative source entries relative to the profile's directory.
func resolveSources(base string, sources []string) []string {
	if len(sources) == 0 {
		return nil
	}
	resolved := make([]string, len(sources))
	for i, src := range sources {
		if filepath.IsAbs(src) {
			resolved[i] = filepath.Clean(src)
			continue
		}
		resolved[i] = filepath.Join(base, src)
	}
	return resolved
}
