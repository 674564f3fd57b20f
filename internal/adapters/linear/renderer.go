// Package linear prints commands, compiler output and exit status for
// non-interactive use.
package linear

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/ui/output"
	"go.trai.ch/cxxcmd/internal/ui/style"
)

// Renderer writes results to stdout and status lines to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
	}
}

// Command prints the rendered command exactly as it will be executed.
func (r *Renderer) Command(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prompt := r.output.String(style.Prompt).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prompt, command)
}

// Rendered prints a rendered command on stdout, keeping its trailing space.
func (r *Renderer) Rendered(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, command)
}

// Result prints the combined compiler output and the exit status.
func (r *Renderer) Result(res domain.ExecutionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Output != "" {
		_, _ = io.WriteString(r.stdout, res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			_, _ = io.WriteString(r.stdout, "\n")
		}
	}

	duration := res.Duration.Round(time.Millisecond)
	icon, color := style.Status(res.ExitCode)
	symbol := output.Paint(r.output, icon, color)
	if res.Succeeded() {
		_, _ = fmt.Fprintf(r.stderr, "%s exit status 0 in %v\n", symbol, duration)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%s exit status %d after %v\n", symbol, res.ExitCode, duration)
}

// Compilers prints one discovered compiler per line.
func (r *Renderer) Compilers(compilers []domain.CompilerOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range compilers {
		_, _ = fmt.Fprintln(r.stdout, c.Display)
	}
}

// Changed announces a watch-triggered rerun.
func (r *Renderer) Changed(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := r.output.String(fmt.Sprintf("changed: %s", strings.Join(paths, ", "))).Faint().String()
	_, _ = fmt.Fprintln(r.stderr, msg)
}

// Timings prints span durations sorted by name.
func (r *Renderer) Timings(timings map[string]time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(timings))
	for name := range timings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		line := fmt.Sprintf("%s %-10s %v", style.Dot, name, timings[name].Round(time.Millisecond))
		_, _ = fmt.Fprintln(r.stderr, r.output.String(line).Faint().String())
	}
}
