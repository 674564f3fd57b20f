package tui_test

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxxcmd/internal/adapters/tui"
	"go.trai.ch/cxxcmd/internal/core/domain"
)

var (
	gcc   = domain.NewCompilerOption("/usr/bin/g++", "13.2.0")
	clang = domain.NewCompilerOption("/usr/bin/clang++", "17.0.6")
)

func newModel(t *testing.T, run tui.RunFunc, sources ...string) *tui.Model {
	t.Helper()
	cfg := domain.NewBuildConfiguration(clang)
	cfg.Output = "a.out"
	cfg.Sources = sources
	return tui.NewModel(context.Background(), tui.Options{
		Compilers: []domain.CompilerOption{gcc, clang},
		Config:    cfg,
		WorkDir:   "/work",
		Run:       run,
	})
}

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *tui.Model, s string) *tui.Model {
	for _, r := range s {
		m, _ = updateModel(m, keyRunes(string(r)))
	}
	return m
}

func focus(m *tui.Model, f tui.Field) *tui.Model {
	for m.Focus != f {
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m := newModel(t, nil, "a.cpp")

	assert.Equal(t, 1, m.CompilerIdx)
	assert.Equal(t, clang, m.Config.Compiler)
	assert.Equal(t, "c++14", m.Config.Standard)
	assert.Equal(t, "-O0", m.Config.Optimization.Flag)
	assert.Equal(t, "a.out", m.OutputInput.Value())
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o a.out 'a.cpp' ", m.Command)
	assert.Equal(t, tui.FieldCompiler, m.Focus)
}

func TestNewModel_NoCompilers(t *testing.T) {
	m := tui.NewModel(context.Background(), tui.Options{
		Config: domain.BuildConfiguration{Sources: []string{"a.cpp"}},
		Run: func(context.Context, domain.BuildConfiguration) (domain.ExecutionResult, error) {
			return domain.ExecutionResult{}, nil
		},
	})

	require.Len(t, m.Compilers, 1)
	assert.True(t, m.Config.Compiler.IsPlaceholder())
	assert.Equal(t, " -std=c++14 -O0 'a.cpp' ", m.Command)
	assert.False(t, m.CanRun())

	_, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)
}

func TestModel_Focus(t *testing.T) {
	m := newModel(t, nil)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tui.FieldStandard, m.Focus)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tui.FieldSources, m.Focus)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tui.FieldCompiler, m.Focus)
}

func TestModel_CycleSelections(t *testing.T) {
	m := newModel(t, nil, "a.cpp")

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, gcc, m.Config.Compiler)
	assert.Equal(t, "/usr/bin/g++ -std=c++14 -O0 -o a.out 'a.cpp' ", m.Command)

	m = focus(m, tui.FieldStandard)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "c++11", m.Config.Standard)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "c++20", m.Config.Standard)

	m = focus(m, tui.FieldOptimization)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "-O2", m.Config.Optimization.Flag)

	m = focus(m, tui.FieldDebug)
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Config.Debug)

	assert.Equal(t, "/usr/bin/g++ -std=c++20 -O2 -g -o a.out 'a.cpp' ", m.Command)
	assert.Equal(t, m.Config.Render(), m.Command)
}

func TestModel_EditOutput(t *testing.T) {
	m := newModel(t, nil, "a.cpp")
	m = focus(m, tui.FieldOutput)

	for range len("a.out") {
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 'a.cpp' ", m.Command)

	m = typeText(m, "quiz")
	assert.Equal(t, "quiz", m.Config.Output)
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o quiz 'a.cpp' ", m.Command)
}

func TestModel_EditOutputCursorKeys(t *testing.T) {
	m := newModel(t, nil, "a.cpp")
	m = focus(m, tui.FieldOutput)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyHome})
	m = typeText(m, "x")
	assert.Equal(t, "xa.out", m.Config.Output)

	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnd})
	m = typeText(m, "2")
	assert.Equal(t, "xa.out2", m.Config.Output)
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o xa.out2 'a.cpp' ", m.Command)
}

func TestModel_Sources(t *testing.T) {
	m := newModel(t, nil)
	m = focus(m, tui.FieldSources)

	m, _ = updateModel(m, keyRunes("a"))
	require.True(t, m.Prompting)
	m = typeText(m, "/work/src/main.cpp")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Prompting)

	m, _ = updateModel(m, keyRunes("a"))
	m = typeText(m, "util.cpp")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"src/main.cpp", "util.cpp"}, m.Config.Sources)
	assert.Equal(t, 1, m.SelectedSource)
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o a.out 'src/main.cpp' 'util.cpp' ", m.Command)

	m, _ = updateModel(m, keyRunes("a"))
	m = typeText(m, "ignored.cpp")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Config.Sources, 2)

	m, _ = updateModel(m, keyRunes("a"))
	m = typeText(m, "src/main.cpp")
	m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"src/main.cpp", "util.cpp"}, m.Config.Sources, "the form lists a path once")
	assert.Equal(t, 0, m.SelectedSource)
	m, _ = updateModel(m, keyRunes("j"))

	m, _ = updateModel(m, keyRunes("k"))
	m, _ = updateModel(m, keyRunes("d"))
	assert.Equal(t, []string{"util.cpp"}, m.Config.Sources)
	assert.Equal(t, 0, m.SelectedSource)

	m, _ = updateModel(m, keyRunes("c"))
	assert.Empty(t, m.Config.Sources)
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o a.out ", m.Command)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, nil)

	_, cmd := updateModel(m, keyRunes("q"))
	assert.True(t, isQuit(cmd))

	_, cmd = updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))

	m = focus(m, tui.FieldOutput)
	_, cmd = updateModel(m, keyRunes("q"))
	assert.False(t, isQuit(cmd))
}

// runMsg executes cmd, descending into batches, and returns the first RunFinishedMsg.
func runMsg(t *testing.T, cmd tea.Cmd) tui.RunFinishedMsg {
	t.Helper()
	require.NotNil(t, cmd)

	switch msg := cmd().(type) {
	case tui.RunFinishedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if finished, ok := c().(tui.RunFinishedMsg); ok {
				return finished
			}
		}
	}
	t.Fatal("no RunFinishedMsg produced")
	return tui.RunFinishedMsg{}
}

func TestModel_Run(t *testing.T) {
	var got domain.BuildConfiguration
	run := func(_ context.Context, cfg domain.BuildConfiguration) (domain.ExecutionResult, error) {
		got = cfg
		return domain.ExecutionResult{Output: "a.cpp:1: error: boom", ExitCode: 1, Duration: time.Second}, nil
	}

	m := newModel(t, run, "a.cpp")
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.Running)
	assert.False(t, m.CanRun())

	_, second := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, second, "only one execution may be in flight")

	finished := runMsg(t, cmd)
	assert.Equal(t, "/usr/bin/clang++ -std=c++14 -O0 -o a.out 'a.cpp' ", finished.Command)
	assert.Equal(t, []string{"a.cpp"}, got.Sources)

	m, _ = updateModel(m, finished)
	assert.False(t, m.Running)
	require.NotNil(t, m.LastExit)
	assert.Equal(t, 1, *m.LastExit)
	assert.Equal(t, 1, m.Runs)

	view := m.View()
	assert.Contains(t, view, "$ /usr/bin/clang++ -std=c++14 -O0 -o a.out 'a.cpp'")
	assert.Contains(t, view, "a.cpp:1: error: boom")
	assert.Contains(t, view, "exit status 1")
}

func TestModel_RunError(t *testing.T) {
	run := func(context.Context, domain.BuildConfiguration) (domain.ExecutionResult, error) {
		return domain.ExecutionResult{}, errors.New("shell could not be started")
	}

	m := newModel(t, run, "a.cpp")
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = updateModel(m, runMsg(t, cmd))

	assert.False(t, m.Running)
	assert.Nil(t, m.LastExit)
	assert.Contains(t, m.View(), "error: shell could not be started")
}

func TestModel_RunDisabledWithoutSources(t *testing.T) {
	called := false
	run := func(context.Context, domain.BuildConfiguration) (domain.ExecutionResult, error) {
		called = true
		return domain.ExecutionResult{}, nil
	}

	m := newModel(t, run)
	m, cmd := updateModel(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, cmd)
	assert.False(t, m.Running)
	assert.False(t, called)
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t, nil, "a.cpp")
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 40})

	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 78, m.Term.Width)
	assert.Positive(t, m.Term.Height)
	assert.Less(t, m.Term.Height, 40)
}
