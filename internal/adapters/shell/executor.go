// Package shell runs rendered compiler commands through a POSIX shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShell is the shell used to interpret rendered commands.
const DefaultShell = "sh"

// Executor implements ports.Executor using os/exec and, optionally, a pty.
type Executor struct {
	logger ports.Logger
	shell  string
	dir    string
	usePTY bool
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates an Executor running commands with DefaultShell in the
// process working directory.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		shell:  DefaultShell,
	}
}

// WithPTY runs commands on a pseudo-terminal so compilers emit colored diagnostics.
func (e *Executor) WithPTY(enable bool) *Executor {
	e.usePTY = enable
	return e
}

// WithShell overrides the shell binary.
func (e *Executor) WithShell(shell string) *Executor {
	e.shell = shell
	return e
}

// WithDir sets the directory commands run in. Empty means the process working directory.
func (e *Executor) WithDir(dir string) *Executor {
	e.dir = dir
	return e
}

// Run executes command with stderr merged into stdout and waits for it to exit.
func (e *Executor) Run(ctx context.Context, command string) (domain.ExecutionResult, error) {
	cmd := exec.CommandContext(ctx, e.shell, "-c", command) //nolint:gosec // the command is the user's own build line
	cmd.Dir = e.dir

	started := time.Now()

	var (
		out []byte
		err error
	)
	if e.usePTY {
		out, err = e.runPTY(cmd)
		if errors.Is(err, errPTYUnavailable) {
			e.logger.Warn("pseudo-terminal unavailable, falling back to pipes")
			cmd = exec.CommandContext(ctx, e.shell, "-c", command) //nolint:gosec // see above
			cmd.Dir = e.dir
			out, err = runPiped(cmd)
		}
	} else {
		out, err = runPiped(cmd)
	}

	result := domain.ExecutionResult{
		Output:   string(out),
		Duration: time.Since(started),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			wrapped := zerr.Wrap(err, domain.ErrShellStartFailed.Error())
			return result, zerr.With(wrapped, "shell", e.shell)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

func runPiped(cmd *exec.Cmd) ([]byte, error) {
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

var errPTYUnavailable = errors.New("pty unavailable")

func (e *Executor) runPTY(cmd *exec.Cmd) ([]byte, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		var pathErr *exec.Error
		if errors.As(err, &pathErr) {
			return nil, err
		}
		return nil, errors.Join(errPTYUnavailable, err)
	}

	var buf bytes.Buffer
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child side is closed.
		_, _ = io.Copy(&buf, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	_ = ptmx.Close()

	return normalizeNewlines(buf.Bytes()), waitErr
}

// normalizeNewlines undoes the terminal's \n to \r\n translation.
func normalizeNewlines(b []byte) []byte {
	return []byte(strings.ReplaceAll(string(b), "\r\n", "\n"))
}
