package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	envconfig "github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/logging"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/client"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

const (
	seedEnv     = "PONG_SEED"
	frontendEnv = "PONG_FRONTEND"
)

// frontend selects how the local game talks to the terminal.
type frontend string

const (
	frontendTcell frontend = "tcell" // tcell screen and key events
	frontendANSI  frontend = "ansi"  // raw stdin, ANSI frames on stdout
)

func parseFrontend(s string) (frontend, error) {
	switch f := frontend(strings.ToLower(strings.TrimSpace(s))); f {
	case "", frontendTcell:
		return frontendTcell, nil
	case frontendANSI:
		return frontendANSI, nil
	default:
		return "", fmt.Errorf("unknown %s %q (want tcell or ansi)", frontendEnv, s)
	}
}

func main() {
	logger := logging.New(os.Stderr, "pong")
	if err := run(logger); err != nil {
		logger.Fatal("game error", "err", err)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	seed, err := envconfig.GetEnvUint64(seedEnv, rand.Uint64())
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	fe, err := parseFrontend(envconfig.GetEnv(frontendEnv, string(frontendTcell)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting match", "mode", cfg.Mode, "tick_rate", cfg.TickRate, "seed", seed, "frontend", fe)

	m := loop.NewMatch(cfg, rand.New(rand.NewPCG(seed, seed)))
	if fe == frontendANSI {
		err = playANSI(ctx, m)
	} else {
		err = playTcell(ctx, m)
	}
	if err != nil {
		return err
	}

	left, right := m.Score()
	logger.Debug("match over", "ticks", m.Ticks(), "left", left, "right", right)
	return nil
}

func playTcell(ctx context.Context, m *loop.Match) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cfg := m.Config()
	return loop.Run(ctx, m, loop.NewTcellFrontend(screen, cfg.CourtWidth, cfg.CourtHeight), cfg.TickRate)
}

// playANSI runs the same client the SSH server uses, on the local terminal.
func playANSI(ctx context.Context, m *loop.Match) error {
	restore, err := draw.RawMode(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = restore()
	}()

	cfg := m.Config()
	c := client.NewClient(server.NewRegistry(), bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username:    os.Getenv("USER"),
		CourtWidth:  cfg.CourtWidth,
		CourtHeight: cfg.CourtHeight,
	})
	return c.Run(ctx, m)
}
