package draw

import "io"

// Screen area in terminal cells.
const (
	Width  = 80
	Height = 22

	// BlockSize is the size of one rendered frame: Height rows of Width
	// cells, each row terminated by a newline.
	BlockSize = (Width + 1) * Height
)

const (
	// Blank fills every cell nothing was drawn to.
	Blank = ' '
	// FarDepth is the depth every cell starts a frame at. It is larger than
	// any depth that can win a cell.
	FarDepth = 127
)

// Frame is a character buffer paired with a depth buffer. Only the nearest
// sample plotted into a cell is kept.
type Frame struct {
	cells [Width * Height]byte
	depth [Width * Height]uint8
}

// NewFrame returns a frame that has already been reset.
func NewFrame() *Frame {
	f := &Frame{}
	f.Reset()
	return f
}

// Reset blanks all cells and pushes every depth back to FarDepth.
func (f *Frame) Reset() {
	for i := range f.cells {
		f.cells[i] = Blank
		f.depth[i] = FarDepth
	}
}

// Plot writes ch into the cell at (x, y) if the cell lies strictly inside
// the screen and z is strictly nearer than what the cell holds. The top row
// and left column are never written. Reports whether the cell was updated.
func (f *Frame) Plot(x, y int, z uint8, ch byte) bool {
	if x <= 0 || x >= Width || y <= 0 || y >= Height {
		return false
	}
	o := x + Width*y
	if z >= f.depth[o] {
		return false
	}
	f.depth[o] = z
	f.cells[o] = ch
	return true
}

// Cell returns the character at (x, y).
func (f *Frame) Cell(x, y int) byte {
	return f.cells[x+Width*y]
}

// Depth returns the depth at (x, y).
func (f *Frame) Depth(x, y int) uint8 {
	return f.depth[x+Width*y]
}

// Filled returns the number of non-blank cells.
func (f *Frame) Filled() int {
	n := 0
	for _, c := range f.cells {
		if c != Blank {
			n++
		}
	}
	return n
}

// AppendBlock appends the frame to dst row by row, each row followed by a
// newline, and returns the extended slice.
func (f *Frame) AppendBlock(dst []byte) []byte {
	for row := 0; row < Height; row++ {
		dst = append(dst, f.cells[row*Width:(row+1)*Width]...)
		dst = append(dst, '\n')
	}
	return dst
}

// Bytes returns the frame as a newly allocated block of BlockSize bytes.
func (f *Frame) Bytes() []byte {
	return f.AppendBlock(make([]byte, 0, BlockSize))
}

// Render writes the frame to w in a single Write call.
func (f *Frame) Render(w io.Writer) (int, error) {
	return w.Write(f.Bytes())
}
