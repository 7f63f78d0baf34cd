package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/donut/internal/config"
	"github.com/tomz197/donut/internal/draw"
	"github.com/tomz197/donut/internal/loop"
	"github.com/tomz197/donut/internal/terminal"
	"golang.org/x/term"
)

func main() {
	logger := config.NewLogger("donut")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var out loop.Terminal
	switch backend := config.GetEnv("DONUT_BACKEND", "ansi"); backend {
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			logger.Fatal("Failed to create screen", "err", err)
		}
		s, err := terminal.NewScreen(screen)
		if err != nil {
			logger.Fatal("Failed to start screen", "err", err)
		}
		s.WatchQuit(stop)
		out = s
	case "ansi":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, h, err := draw.DefaultTermSizeFunc(); err == nil && !draw.Fits(w, h) {
				logger.Warn("Terminal smaller than the frame", "width", w, "height", h)
			}
			out = terminal.NewANSI(os.Stdout, terminal.WithHiddenCursor())
		} else {
			out = terminal.NewANSI(os.Stdout)
		}
	default:
		logger.Fatal("Unknown backend", "DONUT_BACKEND", backend)
	}

	if err := loop.Run(ctx, out); err != nil {
		logger.Error("Render loop failed", "err", err)
		os.Exit(1)
	}
}
