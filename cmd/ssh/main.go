package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
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
	"golang.org/x/sync/errgroup"

	envconfig "github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	applog "github.com/tomz197/pong/internal/logging"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/client"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	drainTimeout    = 15 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger := applog.New(os.Stderr, "pong-ssh")
	if err := run(logger); err != nil {
		logger.Fatal("ssh server", "err", err)
	}
}

func run(logger *log.Logger) error {
	host := envconfig.GetEnv("SSH_HOST", defaultHost)
	port := envconfig.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := envconfig.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	// Every SSH session is a match against the CPU.
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithMode(config.ModeVersusCPU)

	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath, "tick_rate", cfg.TickRate)

	registry := server.NewRegistry()
	games := &gameHandler{cfg: cfg, lobby: registry, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
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
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "sessions", registry.Count())
		for _, info := range registry.Sessions() {
			logger.Info("notifying session", "session", info.ID, "user", info.Username,
				"connected", time.Since(info.Joined).Round(time.Second))
		}

		// Notify players and wait for them to disconnect
		if remaining := registry.Shutdown(drainTimeout); remaining > 0 {
			logger.Warn("sessions still connected at shutdown", "count", remaining)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// gameHandler runs one match per SSH session.
type gameHandler struct {
	cfg    config.Config
	lobby  server.Lobby
	logger *log.Logger
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		c := client.NewClient(h.lobby, bufio.NewReader(sess), sess, client.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Username:     sess.User(),
			CourtWidth:   h.cfg.CourtWidth,
			CourtHeight:  h.cfg.CourtHeight,
		})
		logger := h.logger.With("session", c.ID(), "user", sess.User())
		logger.Info("game started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		m := loop.NewMatch(h.cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		if err := c.Run(sess.Context(), m); err != nil {
			logger.Error("game error", "err", err)
		}

		left, right := m.Score()
		logger.Info("game ended", "ticks", m.Ticks(), "player", left, "cpu", right)
		next(sess)
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
