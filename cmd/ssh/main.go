package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/donut/internal/config"
	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/input"
	"github.com/tomz197/donut/internal/loop"
	"github.com/tomz197/donut/internal/terminal"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.NewLogger("ssh")

	addr := config.Address("SSH_HOST", defaultHost, "SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "addr", addr, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			donutMiddleware(logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY so frames are not held back by Nagle
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", "err", err)
	}
}

// donutMiddleware runs one render loop per session until the viewer quits
// or disconnects.
func donutMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				next(sess)
				return
			}

			logger.Info("New session", "user", sess.User(), "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)
			if !draw.Fits(pty.Window.Width, pty.Window.Height) {
				logger.Warn("Terminal smaller than the frame", "user", sess.User())
			}

			// The frame size is fixed; window changes are drained and ignored.
			go func() {
				for range winCh {
				}
			}()

			ctx, cancel := context.WithCancel(sess.Context())
			defer cancel()
			input.WatchQuit(ctx, input.StartStream(bufio.NewReader(sess)), cancel)

			out := terminal.NewANSI(sess, terminal.WithCRLF(), terminal.WithHiddenCursor())
			if err := loop.Run(ctx, out); err != nil {
				logger.Error("Render loop failed", "user", sess.User(), "err", err)
			}

			logger.Info("Session ended", "user", sess.User())
			next(sess)
		}
	}
}
