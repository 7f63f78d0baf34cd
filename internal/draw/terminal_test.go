package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, false)

	cw.WriteString("ab\n")
	cw.CursorUp(22)
	if out.Len() != 0 {
		t.Fatalf("output before Flush: %q", out.String())
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "ab\n\033[22A"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterCRLF(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, true)

	if _, err := cw.Write([]byte("ab\ncd\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "ab\r\ncd\r\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterLargePayload(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, false)

	payload := strings.Repeat("x", 3*maxChunkSize+17)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != payload {
		t.Errorf("payload mangled: got %d bytes, want %d", out.Len(), len(payload))
	}
}

func TestEscapeHelpers(t *testing.T) {
	var out bytes.Buffer
	ClearScreen(&out)
	HideCursor(&out)
	ShowCursor(&out)
	if got, want := out.String(), "\033[2J\033[H\033[?25l\033[?25h"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 23, true},
		{200, 60, true},
		{80, 22, false},
		{79, 40, false},
	}
	for _, tt := range tests {
		if got := Fits(tt.w, tt.h); got != tt.want {
			t.Errorf("Fits(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
