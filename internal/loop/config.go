package loop

import "time"

// Render loop configuration constants.
// These are fixed; the torus geometry lives in the torus package.

// Frame pacing
const (
	FrameDelay = 15 * time.Millisecond // Pause after each emitted frame
)
