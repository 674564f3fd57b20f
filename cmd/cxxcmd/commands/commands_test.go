package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxxcmd/cmd/cxxcmd/commands"
	"go.trai.ch/cxxcmd/internal/app"
	"go.trai.ch/cxxcmd/internal/build"
)

type call struct {
	method string
	sel    app.Selection
	opts   app.RunOptions
	mode   string
}

type mockApp struct {
	calls    []call
	jsonLogs bool
	err      error
}

func (m *mockApp) Default(_ context.Context, sel app.Selection, mode string) error {
	m.calls = append(m.calls, call{method: "default", sel: sel, mode: mode})
	return m.err
}

func (m *mockApp) UI(_ context.Context, sel app.Selection) error {
	m.calls = append(m.calls, call{method: "ui", sel: sel})
	return m.err
}

func (m *mockApp) Render(_ context.Context, sel app.Selection) error {
	m.calls = append(m.calls, call{method: "render", sel: sel})
	return m.err
}

func (m *mockApp) Run(_ context.Context, sel app.Selection, opts app.RunOptions) error {
	m.calls = append(m.calls, call{method: "run", sel: sel, opts: opts})
	return m.err
}

func (m *mockApp) Compilers(_ context.Context, sel app.Selection) error {
	m.calls = append(m.calls, call{method: "compilers", sel: sel})
	return m.err
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Render(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "render", "--compiler", "/usr/bin/g++", "--std", "c++17", "-O", "2", "-g", "-o", "app", "a.cpp", "b.cpp")
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	got := m.calls[0]
	assert.Equal(t, "render", got.method)
	assert.Equal(t, "/usr/bin/g++", got.sel.Compiler)
	assert.Equal(t, "c++17", got.sel.Standard)
	assert.Equal(t, "2", got.sel.Optimization)
	require.NotNil(t, got.sel.Debug)
	assert.True(t, *got.sel.Debug)
	require.NotNil(t, got.sel.Output)
	assert.Equal(t, "app", *got.sel.Output)
	assert.Equal(t, []string{"a.cpp", "b.cpp"}, got.sel.Sources)
}

func TestCommands_UnsetFlagsFallThrough(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "render", "a.cpp")
	require.NoError(t, err)

	sel := m.calls[0].sel
	assert.Nil(t, sel.Debug)
	assert.Nil(t, sel.Output)
	assert.Empty(t, sel.Standard)
	assert.Empty(t, sel.Compiler)
}

func TestCommands_EmptyOutputIsExplicit(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "render", "--output=", "a.cpp")
	require.NoError(t, err)

	require.NotNil(t, m.calls[0].sel.Output)
	assert.Empty(t, *m.calls[0].sel.Output)
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "run", "--watch", "--timings", "--tty", "--config", "ci.yaml", "--names", "g++,clang++", "main.cpp")
		require.NoError(t, err)

		got := m.calls[0]
		assert.Equal(t, "run", got.method)
		assert.True(t, got.opts.Watch)
		assert.True(t, got.opts.Timings)
		assert.True(t, got.sel.TTY)
		assert.Equal(t, "ci.yaml", got.sel.ConfigPath)
		assert.Equal(t, []string{"g++", "clang++"}, got.sel.Names)
		assert.Equal(t, []string{"main.cpp"}, got.sel.Sources)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "run", "main.cpp")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Default(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "--mode", "linear", "--json", "a.cpp")
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	assert.Equal(t, "default", m.calls[0].method)
	assert.Equal(t, "linear", m.calls[0].mode)
	assert.Equal(t, []string{"a.cpp"}, m.calls[0].sel.Sources)
	assert.True(t, m.jsonLogs)
}

func TestCommands_UIAndCompilers(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "ui", "a.cpp")
	require.NoError(t, err)
	_, err = execute(t, m, "compilers", "--names", "clang++")
	require.NoError(t, err)

	require.Len(t, m.calls, 2)
	assert.Equal(t, "ui", m.calls[0].method)
	assert.Equal(t, "compilers", m.calls[1].method)
	assert.Equal(t, []string{"clang++"}, m.calls[1].sel.Names)
}

func TestCommands_CompilersRejectsArgs(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "compilers", "a.cpp")
	require.Error(t, err)
	assert.Empty(t, m.calls)
}

func TestCommands_Version(t *testing.T) {
	oldVersion, oldCommit, oldDate := build.Version, build.Commit, build.Date
	t.Cleanup(func() {
		build.Version, build.Commit, build.Date = oldVersion, oldCommit, oldDate
	})
	build.Version, build.Commit, build.Date = "1.2.3", "abc123", "2026-01-01"

	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "cxxcmd version 1.2.3 (commit: abc123, date: 2026-01-01)\n", out)
}
