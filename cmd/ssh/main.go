package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/asteroid-dodge/internal/audio"
	"github.com/tomz197/asteroid-dodge/internal/config"
	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/input"
	"github.com/tomz197/asteroid-dodge/internal/loop"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	logger, closeLog, err := cfg.NewLogger(os.Stderr, "ssh")
	if err != nil {
		log.Fatal("failed to open log", "err", err)
	}
	defer closeLog()

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.SSHHost, "port", cfg.SSHPort, "hostKeyPath", cfg.SSHHostKey, "workingDir", workingDir)

	// The sprite cache is read-only after construction and shared by all sessions.
	sprites, err := sprite.NewDefaultCache()
	if err != nil {
		logger.Fatal("failed to build sprites", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := &gameHandler{
		ctx:     ctx,
		cfg:     cfg,
		sprites: sprites,
		logger:  logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "host", cfg.SSHHost, "port", cfg.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Stop every running game, then wait for the sessions to say goodbye.
	cancel()
	h.wait(5 * time.Second)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	ctx     context.Context // Cancelled on server shutdown
	cfg     config.Config
	sprites *sprite.Cache
	logger  *log.Logger
	games   sync.WaitGroup
}

// middleware handles SSH sessions and runs a game on each.
func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.games.Add(1)
		defer h.games.Done()

		logger := h.logger.With("user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		if err := h.play(ctx, sess, sizeTracker.getSize, logger); err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// play runs a game on the session until the player quits or ctx ends.
func (h *gameHandler) play(ctx context.Context, sess ssh.Session, sizeFunc draw.TermSizeFunc, logger *log.Logger) error {
	draw.HideCursor(sess)
	defer func() {
		draw.ClearScreen(sess)
		draw.ShowCursor(sess)
	}()

	game := loop.NewGame(h.sprites, rand.New(rand.NewSource(h.cfg.SeedOrNow())))
	surface := draw.NewFrameBuffer(game.Screen.Width, game.Screen.Height,
		draw.NewTerminalPresenter(sess, sizeFunc))

	// The session may stay open after the game ends.
	stream := input.StartStream(sess)
	defer stream.Close()

	// Remote players have no speaker on this side.
	driver := loop.NewDriver(game, loop.NewRenderer(h.sprites), surface, loop.Options{
		Input:      stream,
		Audio:      audio.Nop{},
		Logger:     logger,
		FrameDelay: h.cfg.FrameDelay,
	})
	if err := driver.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintf(sess, "\033[0m\033[H\033[2JFinal score: %d\r\n", game.Score)
	return nil
}

// wait blocks until all games have ended or timeout passes.
func (h *gameHandler) wait(timeout time.Duration) {
	finished := make(chan struct{})
	go func() {
		h.games.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(timeout):
		h.logger.Warn("sessions still open after shutdown timeout")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
