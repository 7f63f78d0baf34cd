package loop

import (
	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/fixed"
	"github.com/tomz197/donut/internal/torus"
)

// State represents the current phase of the render loop.
type State int

const (
	StateInit       State = iota // Orientation reset, screen cleared
	StateFramePrep               // Buffers reset for a new frame
	StateRasterize               // Surface plotted into the buffers
	StateEmit                    // Frame written to the terminal
	StateAdvance                 // Orientation stepped for the next frame
	StatePace                    // Waiting out the frame delay
	StateTerminated              // Interrupted, trailing newline written
)

var stateNames = [...]string{
	StateInit:       "init",
	StateFramePrep:  "frame-prep",
	StateRasterize:  "rasterize",
	StateEmit:       "emit",
	StateAdvance:    "advance",
	StatePace:       "pace",
	StateTerminated: "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Renderer holds one viewer's orientation and frame buffers.
// It is not safe for concurrent use; give every viewer its own.
type Renderer struct {
	orientation torus.Orientation
	frame       *draw.Frame
	block       []byte // Reused serialization buffer
}

// NewRenderer creates a renderer at the identity orientation.
func NewRenderer() *Renderer {
	return &Renderer{
		orientation: torus.Identity(),
		frame:       draw.NewFrame(),
		block:       make([]byte, 0, draw.BlockSize),
	}
}

// Orientation returns the orientation the next frame is drawn with.
func (r *Renderer) Orientation() torus.Orientation {
	return r.orientation
}

// Prepare resets the frame buffers.
func (r *Renderer) Prepare() {
	r.frame.Reset()
}

// Rasterize plots the torus at the current orientation.
func (r *Renderer) Rasterize() {
	torus.Rasterize(r.frame, fixed.InnerTable, fixed.OuterTable, r.orientation)
}

// Block serializes the frame. The returned slice is reused by the next call.
func (r *Renderer) Block() []byte {
	r.block = r.frame.AppendBlock(r.block[:0])
	return r.block
}

// Advance steps the orientation by one frame.
func (r *Renderer) Advance() {
	r.orientation.Advance()
}

// Frame prepares, rasterizes and serializes one frame without advancing.
func (r *Renderer) Frame() []byte {
	r.Prepare()
	r.Rasterize()
	return r.Block()
}
