package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/ui/style"
)

const helpText = "tab focus • ←/→ change • space debug • a/d/c sources • ctrl+r run • q quit"

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.form(),
		"",
		m.commandPane(),
		"",
		m.outputPane(),
		helpStyle.Render(helpText),
	)
}

// formHeight is the number of rows taken by everything except the output terminal.
func (m *Model) formHeight() int {
	const fixedRows = 8 // title, blank lines, headers, help
	return fixedRows + int(fieldCount) + max(len(m.Config.Sources)-1, 0) + lipgloss.Height(m.commandPane())
}

func (m *Model) form() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CXXCMD") + "\n\n")

	compiler := m.Config.Compiler.Display
	if m.Config.Compiler.IsPlaceholder() {
		compiler = placeholderStyle.Render(compiler)
	} else {
		compiler = valueStyle.Render(compiler)
	}
	s.WriteString(m.row(FieldCompiler, "Compiler", compiler) + "\n")
	s.WriteString(m.row(FieldStandard, "Standard", valueStyle.Render(m.Config.Standard)) + "\n")
	s.WriteString(m.row(FieldOptimization, "Optimize", valueStyle.Render(m.Config.Optimization.Text)) + "\n")

	debug := "[ ]"
	if m.Config.Debug {
		debug = "[x]"
	}
	s.WriteString(m.row(FieldDebug, "Debug", valueStyle.Render(debug)) + "\n")
	s.WriteString(m.row(FieldOutput, "Executable", m.OutputInput.View()) + "\n")
	s.WriteString(m.sourceRows())

	if m.Prompting {
		s.WriteString("\n" + m.SourceInput.View())
	}

	return s.String()
}

func (m *Model) row(f Field, label, value string) string {
	cursor := "  "
	ls := labelStyle
	if m.Focus == f {
		cursor = selectedStyle.Render(style.Cursor + " ")
		ls = focusedLabelStyle
	}
	return cursor + ls.Render(label) + value
}

func (m *Model) sourceRows() string {
	if len(m.Config.Sources) == 0 {
		return m.row(FieldSources, "Sources", helpStyle.Render("(none, press a to add)"))
	}

	rows := make([]string, len(m.Config.Sources))
	for i, src := range m.Config.Sources {
		value := valueStyle.Render(src)
		if m.Focus == FieldSources && i == m.SelectedSource {
			value = selectedStyle.Render(style.Dot + " " + src)
		}
		if i == 0 {
			rows[i] = m.row(FieldSources, "Sources", value)
			continue
		}
		rows[i] = strings.Repeat(" ", labelWidth+2) + value
	}
	return strings.Join(rows, "\n")
}

func (m *Model) commandPane() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("COMMAND"),
		commandStyle.Render(m.Command),
	)
}

func (m *Model) outputPane() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.outputHeader(),
		m.Term.View(),
	)
}

func (m *Model) outputHeader() string {
	switch {
	case m.Running:
		return titleStyle.Render("OUTPUT") + " " + m.Spinner.View() + " running"
	case m.LastExit != nil && *m.LastExit != 0:
		return failureTitleStyle.Render("OUTPUT") + " " +
			failureStyle.Render(fmt.Sprintf("%s exit status %d", style.Cross, *m.LastExit))
	case m.LastExit != nil:
		return titleStyle.Render("OUTPUT") + " " + successStyle.Render(style.Check+" exit status 0")
	case !m.Config.CanExecute():
		return titleStyle.Render("OUTPUT") + " " + helpStyle.Render(disabledReason(m.Config))
	default:
		return titleStyle.Render("OUTPUT")
	}
}

func disabledReason(cfg domain.BuildConfiguration) string {
	if err := cfg.Validate(); err != nil {
		return "run disabled: " + err.Error()
	}
	return ""
}
