// Package style holds the palette and icons shared by the form, the linear
// printer and the log handler.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Prompt  = "$"
	Dot     = "●"
	Cursor  = ">"
)

// Status returns the icon and color for a compiler exit code.
func Status(exitCode int) (string, lipgloss.Color) {
	if exitCode == 0 {
		return Check, Green
	}
	return Cross, Red
}

// Level returns the icon and color for a log level. Info and below have no icon.
func Level(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return Cross, Red
	case level >= slog.LevelWarn:
		return Warning, Yellow
	default:
		return "", Slate
	}
}
