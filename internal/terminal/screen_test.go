package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/loop"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreen(sim)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	sim.SetSize(draw.Width, draw.Height+1)
	return sim, s
}

func TestScreenFrame(t *testing.T) {
	sim, s := newSimScreen(t)
	defer s.Close()

	f := draw.NewFrame()
	f.Plot(1, 1, 0, '@')
	f.Plot(draw.Width-1, draw.Height-1, 0, '.')
	if err := s.Frame(f.Bytes()); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, '@'},
		{draw.Width - 1, draw.Height - 1, '.'},
		{0, 0, ' '},
		{40, 12, ' '},
	}
	for _, tt := range tests {
		got, _, _, _ := sim.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenRendersLoop(t *testing.T) {
	sim, s := newSimScreen(t)

	r := loop.NewRenderer()
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := s.Frame(r.Frame()); err != nil {
		t.Fatal(err)
	}

	filled := 0
	for y := 0; y < draw.Height; y++ {
		for x := 0; x < draw.Width; x++ {
			if c, _, _, _ := sim.GetContent(x, y); c != ' ' {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("no torus cells on screen")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestScreenWatchQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"ctrl-c", tcell.KeyCtrlC, 0},
		{"escape", tcell.KeyEscape, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, s := newSimScreen(t)
			defer s.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			s.WatchQuit(cancel)
			sim.InjectKey(tt.key, tt.r, tcell.ModNone)

			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
				t.Fatal("quit key did not cancel")
			}
		})
	}
}

func TestScreenIgnoresOtherKeys(t *testing.T) {
	sim, s := newSimScreen(t)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.WatchQuit(cancel)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case <-ctx.Done():
		t.Fatal("non-quit key cancelled")
	case <-time.After(50 * time.Millisecond):
	}
}
