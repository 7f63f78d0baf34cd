package draw

import (
	"bytes"
	"testing"
)

func TestNewFrameIsReset(t *testing.T) {
	f := NewFrame()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c := f.Cell(x, y); c != Blank {
				t.Fatalf("Cell(%d, %d) = %q, want blank", x, y, c)
			}
			if d := f.Depth(x, y); d != FarDepth {
				t.Fatalf("Depth(%d, %d) = %d, want %d", x, y, d, FarDepth)
			}
		}
	}
	if n := f.Filled(); n != 0 {
		t.Errorf("Filled() = %d, want 0", n)
	}
}

func TestPlotBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior", 40, 12, true},
		{"first writable cell", 1, 1, true},
		{"last writable cell", Width - 1, Height - 1, true},
		{"left column", 0, 5, false},
		{"top row", 5, 0, false},
		{"right edge", Width, 5, false},
		{"bottom edge", 5, Height, false},
		{"negative x", -3, 5, false},
		{"negative y", 5, -3, false},
		{"far outside", 1000, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame()
			if got := f.Plot(tt.x, tt.y, 10, '@'); got != tt.want {
				t.Errorf("Plot(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			want := 0
			if tt.want {
				want = 1
			}
			if n := f.Filled(); n != want {
				t.Errorf("Filled() = %d, want %d", n, want)
			}
		})
	}
}

func TestPlotDepthTest(t *testing.T) {
	f := NewFrame()

	if !f.Plot(10, 10, 50, '.') {
		t.Fatal("first plot rejected")
	}
	if f.Plot(10, 10, 60, '@') {
		t.Error("farther sample overwrote cell")
	}
	if f.Plot(10, 10, 50, '@') {
		t.Error("equally deep sample overwrote cell")
	}
	if !f.Plot(10, 10, 49, '#') {
		t.Error("nearer sample rejected")
	}
	if c, d := f.Cell(10, 10), f.Depth(10, 10); c != '#' || d != 49 {
		t.Errorf("cell = (%q, %d), want ('#', 49)", c, d)
	}
}

func TestPlotRejectsFarDepth(t *testing.T) {
	f := NewFrame()
	if f.Plot(10, 10, FarDepth, '@') {
		t.Error("sample at FarDepth accepted")
	}
	if f.Plot(10, 10, 255, '@') {
		t.Error("sample beyond FarDepth accepted")
	}
}

func TestResetClearsPreviousFrame(t *testing.T) {
	f := NewFrame()
	f.Plot(3, 4, 0, '@')
	f.Reset()
	if c, d := f.Cell(3, 4), f.Depth(3, 4); c != Blank || d != FarDepth {
		t.Errorf("after Reset cell = (%q, %d)", c, d)
	}
}

func TestBytesLayout(t *testing.T) {
	f := NewFrame()
	f.Plot(1, 1, 0, '@')
	f.Plot(Width-1, Height-1, 0, '.')

	block := f.Bytes()
	if len(block) != BlockSize {
		t.Fatalf("len = %d, want %d", len(block), BlockSize)
	}
	for i, b := range block {
		isEOL := i%(Width+1) == Width
		if isEOL && b != '\n' {
			t.Fatalf("byte %d = %q, want newline", i, b)
		}
		if !isEOL && b == '\n' {
			t.Fatalf("unexpected newline at byte %d", i)
		}
	}
	if got := block[(Width+1)*1+1]; got != '@' {
		t.Errorf("cell (1,1) serialized as %q", got)
	}
	if got := block[(Width+1)*(Height-1)+Width-1]; got != '.' {
		t.Errorf("cell (79,21) serialized as %q", got)
	}
}

// countingWriter records how many Write calls it received.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestRenderSingleWrite(t *testing.T) {
	f := NewFrame()
	var w countingWriter
	n, err := f.Render(&w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n != BlockSize || w.Len() != BlockSize {
		t.Errorf("wrote %d bytes (buffer %d), want %d", n, w.Len(), BlockSize)
	}
	if w.writes != 1 {
		t.Errorf("Render issued %d writes, want 1", w.writes)
	}
}
