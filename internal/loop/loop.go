// Package loop provides the render loop and its per-viewer state.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/donut/internal/draw"
)

// Terminal receives the loop's output. Implementations decide how the
// bytes reach the device; interrupts arrive through the loop's context.
type Terminal interface {
	// Clear wipes the screen and homes the cursor. Called once.
	Clear() error
	// Frame displays one block of draw.BlockSize bytes verbatim.
	Frame(block []byte) error
	// CursorUp moves the cursor up n rows so the next frame overwrites the last.
	CursorUp(n int) error
	// Close ends the output with a single trailing newline.
	Close() error
}

// Options configures a Loop.
type Options struct {
	FrameDelay time.Duration // Pause after each frame; FrameDelay when zero
	OnState    func(State)   // Called on every state transition, may be nil
}

// Loop drives a Terminal through Init → FramePrep → Rasterize → Emit →
// Advance → Pace → FramePrep until its context is cancelled.
type Loop struct {
	term     Terminal
	renderer *Renderer
	delay    time.Duration
	onState  func(State)
	state    State
}

// New creates a loop writing to t.
func New(t Terminal, opts Options) *Loop {
	delay := opts.FrameDelay
	if delay <= 0 {
		delay = FrameDelay
	}
	return &Loop{
		term:     t,
		renderer: NewRenderer(),
		delay:    delay,
		onState:  opts.OnState,
		state:    StateInit,
	}
}

// Run renders the torus to t with default options until ctx is cancelled.
func Run(ctx context.Context, t Terminal) error {
	return New(t, Options{}).Run(ctx)
}

// State returns the phase the loop is in.
func (l *Loop) State() State {
	return l.state
}

// Renderer returns the loop's renderer.
func (l *Loop) Renderer() *Renderer {
	return l.renderer
}

// Run blocks until ctx is cancelled or the terminal fails. Cancellation is
// observed before a frame starts and after the frame delay, so a frame is
// never partially emitted. A cancelled loop returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.enter(StateInit)
	l.renderer = NewRenderer()
	if err := l.term.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	for {
		if ctx.Err() != nil {
			return l.terminate()
		}

		// ===== FRAME PREP =====
		l.enter(StateFramePrep)
		l.renderer.Prepare()

		// ===== RASTERIZE =====
		l.enter(StateRasterize)
		l.renderer.Rasterize()

		// ===== EMIT =====
		l.enter(StateEmit)
		if err := l.term.Frame(l.renderer.Block()); err != nil {
			return fmt.Errorf("emit frame: %w", err)
		}

		// ===== ADVANCE =====
		l.enter(StateAdvance)
		l.renderer.Advance()

		// ===== PACE =====
		l.enter(StatePace)
		if !l.pace(ctx) {
			return l.terminate()
		}
		if err := l.term.CursorUp(draw.Height); err != nil {
			return fmt.Errorf("reposition cursor: %w", err)
		}
	}
}

// pace sleeps for the frame delay and reports whether the loop should go on.
func (l *Loop) pace(ctx context.Context) bool {
	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}
	return ctx.Err() == nil
}

func (l *Loop) terminate() error {
	l.enter(StateTerminated)
	if err := l.term.Close(); err != nil {
		return fmt.Errorf("close terminal: %w", err)
	}
	return nil
}

func (l *Loop) enter(s State) {
	l.state = s
	if l.onState != nil {
		l.onState(s)
	}
}
