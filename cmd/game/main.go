package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/asteroid-dodge/internal/audio"
	"github.com/tomz197/asteroid-dodge/internal/config"
	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/input"
	"github.com/tomz197/asteroid-dodge/internal/loop"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout is the display, so logs go to a file or nowhere.
	logger, closeLog, err := cfg.NewLogger(io.Discard, "dodge")
	if err != nil {
		return err
	}
	defer closeLog()

	sprites, err := sprite.NewDefaultCache()
	if err != nil {
		return fmt.Errorf("build sprites: %w", err)
	}

	var sink audio.Sink = audio.Nop{}
	if !cfg.Mute {
		beeper := audio.NewBeeper(0.3)
		if err := beeper.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer beeper.Close()
			sink = beeper
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	draw.HideCursor(os.Stdout)
	defer func() {
		draw.ClearScreen(os.Stdout)
		draw.ShowCursor(os.Stdout)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.SeedOrNow()
	logger.Info("starting", "seed", seed)

	game := loop.NewGame(sprites, rand.New(rand.NewSource(seed)))
	surface := draw.NewFrameBuffer(game.Screen.Width, game.Screen.Height,
		draw.NewTerminalPresenter(os.Stdout, draw.DefaultTermSizeFunc))
	stream := input.StartStream(os.Stdin)
	defer stream.Close()

	driver := loop.NewDriver(game, loop.NewRenderer(sprites), surface, loop.Options{
		Input:      stream,
		Audio:      sink,
		Logger:     logger,
		FrameDelay: cfg.FrameDelay,
	})
	return driver.Run(ctx)
}
