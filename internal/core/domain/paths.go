package domain

import "path/filepath"

// RelativizeSource expresses path relative to cwd. Paths that cannot be made
// relative (different volume, relative input with an absolute cwd) are returned cleaned.
func RelativizeSource(cwd, path string) string {
	if !filepath.IsAbs(path) || !filepath.IsAbs(cwd) {
		return filepath.Clean(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Clean(path)
	}
	return rel
}
