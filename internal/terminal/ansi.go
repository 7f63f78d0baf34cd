// Package terminal provides the loop.Terminal implementations: a plain
// escape-sequence stream and a tcell screen.
package terminal

import (
	"io"

	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/loop"
)

// ANSI writes frames to a VT100-compatible stream. Each call flushes, so a
// frame reaches the writer in one piece.
type ANSI struct {
	cw         *draw.ChunkWriter
	hideCursor bool
}

// Ensure ANSI satisfies loop.Terminal.
var _ loop.Terminal = (*ANSI)(nil)

type ansiOptions struct {
	crlf       bool
	hideCursor bool
}

// Option configures an ANSI terminal.
type Option func(*ansiOptions)

// WithCRLF sends newlines as CR LF, for terminals in raw mode such as a
// remote SSH PTY.
func WithCRLF() Option {
	return func(o *ansiOptions) { o.crlf = true }
}

// WithHiddenCursor hides the cursor on Clear and shows it again on Close.
func WithHiddenCursor() Option {
	return func(o *ansiOptions) { o.hideCursor = true }
}

// NewANSI creates an ANSI terminal writing to w.
func NewANSI(w io.Writer, opts ...Option) *ANSI {
	var o ansiOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &ANSI{
		cw:         draw.NewChunkWriter(w, o.crlf),
		hideCursor: o.hideCursor,
	}
}

// Clear wipes the screen and homes the cursor.
func (a *ANSI) Clear() error {
	if a.hideCursor {
		draw.HideCursor(a.cw)
	}
	draw.ClearScreen(a.cw)
	return a.cw.Flush()
}

// Frame writes block verbatim.
func (a *ANSI) Frame(block []byte) error {
	if _, err := a.cw.Write(block); err != nil {
		return err
	}
	return a.cw.Flush()
}

// CursorUp moves the cursor up n rows.
func (a *ANSI) CursorUp(n int) error {
	a.cw.CursorUp(n)
	return a.cw.Flush()
}

// Close writes the trailing newline.
func (a *ANSI) Close() error {
	if _, err := a.cw.Write([]byte{'\n'}); err != nil {
		return err
	}
	if a.hideCursor {
		draw.ShowCursor(a.cw)
	}
	return a.cw.Flush()
}
