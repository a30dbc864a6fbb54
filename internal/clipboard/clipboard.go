// Package clipboard copies exported code to the user's clipboard.
package clipboard

import (
	"errors"
	"io"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// Func adapts a plain function to Writer.
type Func func(text string) error

// Write calls f(text).
func (f Func) Write(text string) error {
	return f(text)
}

// Mode selects how the OSC 52 sequence is wrapped for terminal multiplexers.
type Mode int

const (
	ModeDirect Mode = iota
	ModeTmux
	ModeScreen
)

// DetectMode inspects the environment through getenv and picks the wrapping
// needed to reach the outer terminal.
func DetectMode(getenv func(string) string) Mode {
	if getenv("TMUX") != "" {
		return ModeTmux
	}
	if strings.HasPrefix(getenv("TERM"), "screen") {
		return ModeScreen
	}
	return ModeDirect
}

// OSC52 writes the OSC 52 escape sequence to a terminal, which then sets the
// system clipboard. It works over SSH as long as the terminal supports it.
type OSC52 struct {
	out  io.Writer
	mode Mode
}

// NewOSC52 returns a clipboard writing to out, usually the controlling terminal.
func NewOSC52(out io.Writer, mode Mode) *OSC52 {
	return &OSC52{out: out, mode: mode}
}

// Write emits the escape sequence carrying text.
func (c *OSC52) Write(text string) error {
	if c == nil || c.out == nil {
		return prismerrors.NewClipboardError("osc52", errors.New("no terminal to write to"))
	}

	seq := osc52.New(text)
	switch c.mode {
	case ModeTmux:
		seq = seq.Tmux()
	case ModeScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return prismerrors.NewClipboardError("osc52", err)
	}
	return nil
}
