package draw

// Palette holds the shading characters from sparsest to densest.
const Palette = ".,-~:;=!*#$@"

// Shade maps a lighting level to a palette character. Levels below zero
// use the sparsest character and levels past the end use the densest.
func Shade(n int64) byte {
	if n < 0 {
		return Palette[0]
	}
	if n >= int64(len(Palette)) {
		return Palette[len(Palette)-1]
	}
	return Palette[n]
}

// ClampDepth squeezes a raw depth into the range a depth buffer can hold.
func ClampDepth(z int64) uint8 {
	if z < 0 {
		return 0
	}
	if z > 255 {
		return 255
	}
	return uint8(z)
}
