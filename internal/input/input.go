// Package input watches a raw terminal byte stream for quit requests.
package input

import (
	"bufio"
	"context"
)

// Control bytes a raw-mode terminal sends instead of signals.
const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// Stream delivers input bytes via a channel.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel is closed when r returns an error, including EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// IsQuit reports whether b asks the renderer to stop.
func IsQuit(b byte) bool {
	switch b {
	case 'q', 'Q', ctrlC, ctrlD:
		return true
	}
	return false
}

// WatchQuit calls cancel when a quit byte arrives or the stream ends. It
// returns immediately; the watcher exits when ctx is done.
func WatchQuit(ctx context.Context, s *Stream, cancel context.CancelFunc) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case b, ok := <-s.ch:
				if !ok || IsQuit(b) {
					cancel()
					return
				}
			}
		}
	}()
}
