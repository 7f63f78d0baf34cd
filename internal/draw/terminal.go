package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes handed to the underlying writer at once.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes it on Flush.
// All chunks of one Flush reach the underlying writer through a single
// buffered flush, so a frame is never split across two Flush calls.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	crlf   bool
}

// NewChunkWriter creates a ChunkWriter that writes to w. When crlf is set
// every newline is sent as CR LF, which a terminal in raw mode needs to
// return the cursor to the first column.
func NewChunkWriter(w io.Writer, crlf bool) *ChunkWriter {
	return &ChunkWriter{
		bufw: bufio.NewWriterSize(w, 8192),
		crlf: crlf,
	}
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	if !cw.crlf {
		return cw.buf.Write(p)
	}
	for _, b := range p {
		if b == '\n' {
			cw.buf.WriteByte('\r')
		}
		cw.buf.WriteByte(b)
	}
	return len(p), nil
}

// WriteString appends s verbatim, without newline translation.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// CursorUp appends an ANSI sequence moving the cursor up n rows.
func (cw *ChunkWriter) CursorUp(n int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(n), 10))
	cw.buf.WriteByte('A')
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Fits reports whether a terminal of the given size shows a whole frame
// plus the row the cursor rests on after it.
func Fits(width, height int) bool {
	return width >= Width && height > Height
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
