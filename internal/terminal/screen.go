package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/donut/internal/loop"
)

// Screen draws frames into a tcell screen. Cells are addressed directly, so
// the cursor never needs repositioning.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// Ensure Screen satisfies loop.Terminal.
var _ loop.Terminal = (*Screen)(nil)

// NewScreen initializes s and wraps it.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	return &Screen{screen: s, style: tcell.StyleDefault}, nil
}

// Clear blanks the screen.
func (t *Screen) Clear() error {
	t.screen.Clear()
	t.screen.Show()
	return nil
}

// Frame copies block into the screen, one row per line, and shows it.
func (t *Screen) Frame(block []byte) error {
	col, row := 0, 0
	for _, b := range block {
		if b == '\n' {
			row++
			col = 0
			continue
		}
		t.screen.SetContent(col, row, rune(b), nil, t.style)
		col++
	}
	t.screen.Show()
	return nil
}

// CursorUp is a no-op; the next Frame overwrites the same cells.
func (t *Screen) CursorUp(int) error {
	return nil
}

// Close restores the terminal.
func (t *Screen) Close() error {
	t.screen.Fini()
	return nil
}

// WatchQuit calls cancel when Ctrl-C, Escape or q is pressed. The watcher
// exits once the screen is closed.
func (t *Screen) WatchQuit(cancel context.CancelFunc) {
	go func() {
		for {
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if isQuitKey(ev) {
					cancel()
					return
				}
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
