package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cxxcmd/internal/core/domain"
)

const (
	labelWidth         = 12
	logPaneBorderWidth = 2
	minLogHeight       = 3
	timeRounding       = time.Millisecond
)

// Field identifies a focusable row of the form.
type Field int

const (
	// FieldCompiler selects the compiler binary.
	FieldCompiler Field = iota
	// FieldStandard selects the language standard.
	FieldStandard
	// FieldOptimization selects the optimization level.
	FieldOptimization
	// FieldDebug toggles debug information.
	FieldDebug
	// FieldOutput edits the executable name.
	FieldOutput
	// FieldSources edits the source list.
	FieldSources

	fieldCount
)

// RunFinishedMsg carries the outcome of an execution back into the update loop.
type RunFinishedMsg struct {
	Command string
	Result  domain.ExecutionResult
	Err     error
}

// Model represents the form state. Config is the only source of the rendered
// command and is mutated from Update alone.
type Model struct {
	ctx context.Context
	run RunFunc

	WorkDir     string
	Compilers   []domain.CompilerOption
	CompilerIdx int
	StdIdx      int
	OptIdx      int

	Config  domain.BuildConfiguration
	Command string

	Focus          Field
	SelectedSource int
	Prompting      bool
	OutputInput    textinput.Model
	SourceInput    textinput.Model

	Running  bool
	Runs     int
	LastExit *int
	Spinner  spinner.Model
	Term     *Vterm

	Width  int
	Height int
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Term.SetWidth(msg.Width - logPaneBorderWidth)
		m.Term.SetHeight(max(msg.Height-m.formHeight(), minLogHeight))

	case spinner.TickMsg:
		if !m.Running {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case RunFinishedMsg:
		m.finishRun(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.Prompting {
		return m.handlePromptKey(msg)
	}

	switch key {
	case "tab":
		m.setFocus((m.Focus + 1) % fieldCount)
		return nil
	case "shift+tab":
		m.setFocus((m.Focus + fieldCount - 1) % fieldCount)
		return nil
	case "ctrl+r":
		return m.startRun()
	}

	// home and end move the cursor while the executable name has focus.
	editing := m.Focus == FieldOutput && (key == "home" || key == "end")
	if !editing && m.Term.Scroll(key) {
		return nil
	}

	if m.Focus == FieldOutput {
		var cmd tea.Cmd
		m.OutputInput, cmd = m.OutputInput.Update(msg)
		m.Config.Output = strings.TrimSpace(m.OutputInput.Value())
		m.refresh()
		return cmd
	}

	if key == "q" {
		return tea.Quit
	}

	switch m.Focus {
	case FieldCompiler:
		m.CompilerIdx = cycle(m.CompilerIdx, len(m.Compilers), key)
		m.Config.Compiler = m.Compilers[m.CompilerIdx]
	case FieldStandard:
		m.StdIdx = cycle(m.StdIdx, len(domain.Standards()), key)
		m.Config.Standard = domain.Standards()[m.StdIdx]
	case FieldOptimization:
		m.OptIdx = cycle(m.OptIdx, len(domain.Optimizations()), key)
		m.Config.Optimization = domain.Optimizations()[m.OptIdx]
	case FieldDebug:
		switch key {
		case " ", "space", "left", "right", "enter", "h", "l":
			m.Config.Debug = !m.Config.Debug
		}
	case FieldSources:
		return m.handleSourcesKey(key)
	case FieldOutput, fieldCount:
	}

	m.refresh()
	return nil
}

func (m *Model) handleSourcesKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		m.SelectedSource = max(m.SelectedSource-1, 0)
	case "down", "j":
		m.SelectedSource = min(m.SelectedSource+1, max(len(m.Config.Sources)-1, 0))
	case "a":
		m.Prompting = true
		m.SourceInput.Reset()
		return m.SourceInput.Focus()
	case "d", "delete", "backspace":
		m.Config.RemoveSource(m.SelectedSource)
		m.SelectedSource = min(m.SelectedSource, max(len(m.Config.Sources)-1, 0))
	case "c":
		m.Config.ClearSources()
		m.SelectedSource = 0
	}
	m.refresh()
	return nil
}

// addSource selects path, appending it first unless the form already lists it.
func (m *Model) addSource(path string) {
	if i := slices.Index(m.Config.Sources, path); i >= 0 {
		m.SelectedSource = i
		return
	}
	if m.Config.AddSource(path) {
		m.SelectedSource = len(m.Config.Sources) - 1
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.SourceInput.Value())
		if path != "" {
			m.addSource(domain.RelativizeSource(m.WorkDir, path))
		}
		m.closePrompt()
		m.refresh()
		return nil
	case "esc":
		m.closePrompt()
		return nil
	}

	var cmd tea.Cmd
	m.SourceInput, cmd = m.SourceInput.Update(msg)
	return cmd
}

func (m *Model) closePrompt() {
	m.Prompting = false
	m.SourceInput.Blur()
	m.SourceInput.Reset()
}

func (m *Model) setFocus(f Field) {
	m.Focus = f
	if f == FieldOutput {
		m.OutputInput.Focus()
	} else {
		m.OutputInput.Blur()
	}
}

// CanRun reports whether ctrl+r would start an execution.
func (m *Model) CanRun() bool {
	return !m.Running && m.run != nil && m.Config.CanExecute()
}

func (m *Model) startRun() tea.Cmd {
	if !m.CanRun() {
		return nil
	}

	m.Running = true
	m.Runs++
	cfg := m.Config.Clone()
	command := m.Command
	ctx := m.ctx
	run := m.run

	m.Term.WriteString(fmt.Sprintf("$ %s\n", strings.TrimRight(command, " ")))

	return tea.Batch(m.Spinner.Tick, func() tea.Msg {
		res, err := run(ctx, cfg)
		return RunFinishedMsg{Command: command, Result: res, Err: err}
	})
}

func (m *Model) finishRun(msg RunFinishedMsg) {
	m.Running = false

	if msg.Err != nil {
		m.LastExit = nil
		m.Term.WriteString(fmt.Sprintf("error: %v\n", msg.Err))
		return
	}

	out := msg.Result.Output
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	m.Term.WriteString(out)

	code := msg.Result.ExitCode
	m.LastExit = &code
	m.Term.WriteString(fmt.Sprintf("exit status %d (%s)\n", code, msg.Result.Duration.Round(timeRounding)))
}

// refresh re-renders the command from the current configuration.
func (m *Model) refresh() {
	m.Command = m.Config.Render()
}

func cycle(idx, n int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "right", "l", " ", "space":
		return (idx + 1) % n
	case "left", "h":
		return (idx + n - 1) % n
	}
	return idx
}
