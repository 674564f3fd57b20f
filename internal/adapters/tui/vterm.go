package tui

import (
	"bytes"
	"sync"

	"github.com/vito/midterm"
)

// Vterm is a scrollable virtual terminal holding compiler output.
type Vterm struct {
	vt      *midterm.Terminal
	Offset  int
	Height  int
	Width   int
	viewBuf *bytes.Buffer
	mu      sync.Mutex
}

// NewVterm creates a new Vterm instance.
func NewVterm() *Vterm {
	return &Vterm{
		vt:      midterm.NewAutoResizingTerminal(),
		Height:  1,
		viewBuf: new(bytes.Buffer),
	}
}

// Write implements io.Writer. Bare line feeds are expanded to CRLF so plain
// process output starts each line at column zero.
func (v *Vterm) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	stickToBottom := v.Offset >= v.maxOffset()

	if _, err := v.vt.Write(expandNewlines(p)); err != nil {
		return 0, err
	}

	if stickToBottom {
		v.Offset = v.maxOffset()
	}

	return len(p), nil
}

// WriteString writes s to the terminal.
func (v *Vterm) WriteString(s string) {
	_, _ = v.Write([]byte(s))
}

// SetHeight updates the view height and adjusts scrolling.
func (v *Vterm) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	h = max(h, 1)
	stickToBottom := v.Offset >= v.maxOffset()
	v.Height = h

	if stickToBottom {
		v.Offset = v.maxOffset()
	} else {
		v.Offset = min(v.Offset, v.maxOffset())
	}
}

// SetWidth updates the terminal width.
func (v *Vterm) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Width = max(w, 1)
	v.vt.ResizeX(v.Width)
}

// UsedHeight returns the total number of lines in the terminal buffer.
func (v *Vterm) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vt.UsedHeight()
}

// View renders the visible window of the terminal.
func (v *Vterm) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.viewBuf.Reset()
	v.Offset = max(min(v.Offset, v.maxOffset()), 0)

	for i := range v.Height {
		row := v.Offset + i
		if row >= v.vt.UsedHeight() {
			break
		}
		if i > 0 {
			_ = v.viewBuf.WriteByte('\n')
		}
		_ = v.vt.RenderLine(v.viewBuf, row)
	}

	return v.viewBuf.String()
}

// Scroll moves the view for a navigation key and reports whether the key was handled.
func (v *Vterm) Scroll(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch key {
	case "pgup":
		v.Offset -= v.Height
	case "pgdown":
		v.Offset += v.Height
	case "home":
		v.Offset = 0
	case "end":
		v.Offset = v.maxOffset()
	default:
		return false
	}

	v.Offset = max(min(v.Offset, v.maxOffset()), 0)
	return true
}

func (v *Vterm) maxOffset() int {
	return max(v.vt.UsedHeight()-v.Height, 0)
}

func expandNewlines(p []byte) []byte {
	if !bytes.Contains(p, []byte{'\n'}) {
		return p
	}
	out := make([]byte, 0, len(p)+bytes.Count(p, []byte{'\n'}))
	for i, c := range p {
		if c == '\n' && (i == 0 || p[i-1] != '\r') {
			out = append(out, '\r')
		}
		out = append(out, c)
	}
	return out
}
