package toolchain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxxcmd/internal/adapters/toolchain"
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeFakeCompiler installs an executable named name in dir that prints banner.
func writeFakeCompiler(t *testing.T, dir, name, banner string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\nprintf '" + banner + "'\n"
	//nolint:gosec // test fixture must be executable
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700))
	return path
}

func prependPath(t *testing.T, dirs ...string) {
	t.Helper()
	path := os.Getenv("PATH")
	for i := len(dirs) - 1; i >= 0; i-- {
		path = dirs[i] + string(os.PathListSeparator) + path
	}
	t.Setenv("PATH", path)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		banner string
		want   string
	}{
		{"g++ (GCC) 13.2.0\nCopyright (C) 2023 Free Software Foundation, Inc.\n", "13.2.0"},
		{"g++ (Ubuntu 11.4.0-1ubuntu1~22.04) 11.4.0\n", "11.4.0-1ubuntu1~22.04)"},
		{"Apple clang version 15.0.0 (clang-1500.3.9.4)\n", "version"},
		{"tcc 0.9.27\n", ""},
		{"clang version 17.0.6\nTarget: x86_64-pc-linux-gnu\n", "17.0.6"},
		{"", ""},
		{"\n", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toolchain.ParseVersion([]byte(tt.banner)), tt.banner)
	}
}

func TestDiscoverer_Discover(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	first := t.TempDir()
	second := t.TempDir()
	p1 := writeFakeCompiler(t, first, "fake-gxx", `fake-gxx (GCC) 13.2.0\nCopyright\n`)
	p2 := writeFakeCompiler(t, second, "fake-gxx", `fake-gxx (GCC) 12.1.0\n`)
	prependPath(t, first, second)

	opts, err := toolchain.NewDiscoverer(mockLogger).Discover(context.Background(), []string{"fake-gxx"})
	require.NoError(t, err)

	assert.Equal(t, []domain.CompilerOption{
		{Display: p1 + " (13.2.0)", Path: p1},
		{Display: p2 + " (12.1.0)", Path: p2},
	}, opts)
}

func TestDiscoverer_Discover_MultipleNamesDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	gxx := writeFakeCompiler(t, dir, "fake-gxx", `fake-gxx (GCC) 13.2.0\n`)
	clang := writeFakeCompiler(t, dir, "fake-clangxx", `clang version 17.0.6\n`)
	prependPath(t, dir)

	opts, err := toolchain.NewDiscoverer(mockLogger).
		Discover(context.Background(), []string{"fake-gxx", "fake-clangxx", "fake-gxx"})
	require.NoError(t, err)

	require.Len(t, opts, 2)
	assert.Equal(t, gxx, opts[0].Path)
	assert.Equal(t, clang, opts[1].Path)
	assert.Equal(t, clang+" (17.0.6)", opts[1].Display)
}

func TestDiscoverer_Discover_NoneFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("no compiler found", "names", "no-such-compiler-xyz123").Times(1)

	opts, err := toolchain.NewDiscoverer(mockLogger).
		Discover(context.Background(), []string{"no-such-compiler-xyz123"})
	require.NoError(t, err)

	require.Len(t, opts, 1)
	assert.True(t, opts[0].IsPlaceholder())
	assert.Equal(t, domain.NotFoundDisplay, opts[0].Display)
}

func TestDiscoverer_Discover_VersionQueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	path := filepath.Join(dir, "broken-gxx")
	mockLogger.EXPECT().
		Warn("compiler did not report a version", "compiler", path, "error", gomock.Any()).
		Times(1)
	//nolint:gosec // test fixture must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 1\n"), 0o700))
	prependPath(t, dir)

	opts, err := toolchain.NewDiscoverer(mockLogger).Discover(context.Background(), []string{"broken-gxx"})
	require.NoError(t, err)

	require.Len(t, opts, 1)
	assert.Equal(t, path+" (unknown)", opts[0].Display)
}

func TestDiscoverer_Discover_LookupUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := toolchain.NewDiscoverer(mockLogger).
		WithLookup("no-such-which-xyz123").
		Discover(context.Background(), []string{"g++"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDiscoveryFailed.Error())
}
