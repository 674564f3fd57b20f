package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/cxxcmd/internal/ui/output"
	"go.trai.ch/cxxcmd/internal/ui/style"
)

// pathKeys are attribute keys whose values name a compiler binary, a profile
// or a watched directory. They are highlighted so they stand out of the message.
var pathKeys = map[string]struct{}{
	"compiler": {},
	"path":     {},
	"dir":      {},
}

// PrettyHandler is a slog.Handler that prints one colored line per record:
// the level icon, the message, then key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := style.Level(r.Level)

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}

	var b strings.Builder
	b.WriteString(output.Paint(h.out, msg, color))

	for _, attr := range h.attrs {
		b.WriteString(" " + h.formatAttr(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteString(" " + h.formatAttr(attr))
		return true
	})
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	clone := *h
	clone.attrs = merged
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	value := formatValue(attr.Value.Resolve())
	if _, ok := pathKeys[attr.Key]; ok {
		value = output.Paint(h.out, value, style.Iris)
	}

	return h.out.String(key + "=").Faint().String() + value
}

// formatValue renders a value so the line stays splittable on spaces.
// Errors print their message chain without zerr metadata.
func formatValue(v slog.Value) string {
	s := v.String()
	if err, ok := v.Any().(error); ok && v.Kind() == slog.KindAny {
		s = strings.Join(collectErrorMessages(err), ": ")
	}

	if s == "" || strings.ContainsAny(s, " \t\n\"") {
		return strconv.Quote(s)
	}
	return s
}
