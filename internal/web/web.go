// Package web serves the landing page, single frames over HTTP and a live
// frame stream over websocket.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/donut/internal/loop"
)

//go:embed index.html
var indexPage string

// maxSteps bounds the step query of /frame.
const maxSteps = 100000

const writeTimeout = 5 * time.Second

// Options configures the handler.
type Options struct {
	SSHHost    string        // Host shown in the ssh command on the landing page
	FrameDelay time.Duration // Pause between streamed frames; loop.FrameDelay when zero
	Logger     *log.Logger   // Defaults to log.Default()
}

type handler struct {
	page       string
	frameDelay time.Duration
	logger     *log.Logger
	upgrader   websocket.Upgrader
}

// NewHandler returns the HTTP routes:
//
//	GET /             landing page
//	GET /frame?step=N one plain-text frame after N orientation steps
//	GET /ws           websocket stream, one text message per frame
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{
		page:       strings.ReplaceAll(indexPage, "{{.SSHHost}}", opts.SSHHost),
		frameDelay: opts.FrameDelay,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 4096,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /frame", h.frame)
	mux.HandleFunc("GET /ws", h.stream)
	return mux
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, h.page)
}

func (h *handler) frame(w http.ResponseWriter, r *http.Request) {
	steps := 0
	if q := r.URL.Query().Get("step"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 || n > maxSteps {
			http.Error(w, fmt.Sprintf("step must be an integer in [0, %d]", maxSteps), http.StatusBadRequest)
			return
		}
		steps = n
	}

	rd := loop.NewRenderer()
	for k := 0; k < steps; k++ {
		rd.Advance()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write(rd.Frame()); err != nil {
		h.logger.Debug("Frame write failed", "remote", r.RemoteAddr, "err", err)
	}
}

func (h *handler) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The browser never sends frames; a read error means it went away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	h.logger.Info("Viewer connected", "remote", r.RemoteAddr)
	l := loop.New(&socket{conn: conn}, loop.Options{FrameDelay: h.frameDelay})
	if err := l.Run(ctx); err != nil && !isClosed(err) {
		h.logger.Warn("Stream ended with error", "remote", r.RemoteAddr, "err", err)
	}
	h.logger.Info("Viewer disconnected", "remote", r.RemoteAddr)
}

func isClosed(err error) bool {
	return errors.Is(err, websocket.ErrCloseSent) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

// socket is a loop.Terminal sending each frame as one websocket text message.
type socket struct {
	conn *websocket.Conn
}

var _ loop.Terminal = (*socket)(nil)

// Clear is a no-op; every message replaces the whole picture.
func (s *socket) Clear() error {
	return nil
}

func (s *socket) Frame(block []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, block)
}

// CursorUp is a no-op for the same reason as Clear.
func (s *socket) CursorUp(int) error {
	return nil
}

// Close sends a normal closure. The peer may already be gone, so the error
// is dropped.
func (s *socket) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return nil
}
