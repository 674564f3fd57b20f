package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cxxcmd/internal/ui/style"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(labelWidth)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true).
				Width(labelWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(style.White)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	commandStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	successStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	failureStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)
)
