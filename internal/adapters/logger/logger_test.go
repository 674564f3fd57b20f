package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxxcmd/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("found 2 compilers")
	assert.Equal(t, "found 2 compilers\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("no compiler found")
	assert.Equal(t, "! no compiler found\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil error is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("standard error", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(errors.New("exit status 1"))
		assert.Equal(t, "✗ Error: exit status 1\n", buf.String())
	})

	t.Run("wrapped chain", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		err := zerr.Wrap(errors.New("exec: \"which\": executable file not found in $PATH"), "failed to run compiler discovery")
		lg.Error(err)

		want := "✗ Error: failed to run compiler discovery\n" +
			"\n" +
			"  Caused by:\n" +
			"    → exec: \"which\": executable file not found in $PATH\n"
		assert.Equal(t, want, buf.String())
	})
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("rendered")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "rendered", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatErrorChain(t *testing.T) {
	got := logger.FormatErrorChain([]string{"outer\ndetail", "inner"})
	want := "Error: outer\n" +
		"       detail\n" +
		"\n" +
		"  Caused by:\n" +
		"    → inner"
	assert.Equal(t, want, got)
}

func TestCollectErrorMessages(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")
	assert.Equal(t,
		[]string{"outer layer", "middle layer", "root cause"},
		logger.CollectErrorMessages(err),
	)
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	slog.New(h).WithGroup("run").Info("finished", "exit_code", 0)

	assert.Equal(t, "finished run.exit_code=0\n", buf.String())
}

func TestLogger_WarnWithAttrs(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("compiler did not report a version",
		"compiler", "/opt/gcc/bin/g++",
		"error", zerr.Wrap(errors.New("exit status 1"), "failed to query compiler version"),
	)

	want := "! compiler did not report a version compiler=/opt/gcc/bin/g++ " +
		"error=\"failed to query compiler version: exit status 1\"\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSONAttrs(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Warn("no compiler found", "names", "g++,clang++")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "g++,clang++", record["names"])
}

func TestPrettyHandler_QuotesValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	slog.New(h).With("dir", "/src/my project").Info("watching", "output", "")

	assert.Equal(t, "watching dir=\"/src/my project\" output=\"\"\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := slog.New(h)
	log.Info("hidden")
	log.Error("compile failed")

	assert.Equal(t, "✗ compile failed\n", buf.String())
}

func TestPrettyHandler_HighlightsPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	slog.New(h).Info("profile loaded", "path", ".cxxcmd.yaml")

	assert.Contains(t, buf.String(), ".cxxcmd.yaml")
	assert.Contains(t, buf.String(), "\x1b[")
}
