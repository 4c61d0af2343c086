// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	envconfig "github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
)

// Court dimensions in logical pixels.
// Actual rendering scales to fit terminal size.
const (
	CourtWidth  = 800
	CourtHeight = 480
)

// Tick rate
const (
	TargetTickRate = 60
)

// Ball
const (
	BallSpeed  = 5 // Pixels per tick on each axis
	BallRadius = 20.0
)

// Paddle
const (
	PaddleWidth  = 20
	PaddleHeight = 120
	PaddleSpeed  = 5  // Pixels per tick
	PaddleMargin = 10 // Gap between a court edge and its paddle
)

// CPU opponent
const (
	ReactionThreshold = 10 // Dead zone in pixels around the paddle center
	HitCooldownTicks  = 0  // 0 keeps the reference behavior (no cooldown)
)

// HUD
const (
	ScoreFontSize = 80
)

// Terminal rendering
const (
	MaxTermWidth  = 160 // Render area is clamped to this many columns
	MaxTermHeight = 48  // and this many rows; the rest is border/padding
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Mode selects which variant of the game a match runs.
type Mode int

const (
	ModeVersusCPU Mode = iota // Human left paddle, CPU right paddle, scoring
	ModeClassic               // Two boards on one input source, walls bounce
)

// String returns the name used by PONG_MODE.
func (m Mode) String() string {
	switch m {
	case ModeVersusCPU:
		return "cpu"
	case ModeClassic:
		return "classic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a PONG_MODE value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu", "versus", "":
		return ModeVersusCPU, nil
	case "classic":
		return ModeClassic, nil
	default:
		return ModeVersusCPU, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Boundary selects what happens when the ball reaches the left or right wall.
type Boundary int

const (
	BoundaryScore  Boundary = iota // Exit awards a point and resets the ball
	BoundaryBounce                 // Wall reflects the ball
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the parameters of a single match. It is passed by value into
// every component at construction and never changed afterwards.
type Config struct {
	CourtWidth  int
	CourtHeight int
	TickRate    int

	BallSpeedX int // Magnitude; sign is chosen on reset
	BallSpeedY int
	BallRadius float64

	PaddleWidth  int
	PaddleHeight int
	PaddleSpeed  int
	PaddleMargin int

	ReactionThreshold int
	HitCooldownTicks  int
	ScoreFontSize     int

	Background draw.Color
	Foreground draw.Color

	Mode     Mode
	Boundary Boundary
}

// Default returns the versus-CPU configuration.
func Default() Config {
	return Config{
		CourtWidth:        CourtWidth,
		CourtHeight:       CourtHeight,
		TickRate:          TargetTickRate,
		BallSpeedX:        BallSpeed,
		BallSpeedY:        BallSpeed,
		BallRadius:        BallRadius,
		PaddleWidth:       PaddleWidth,
		PaddleHeight:      PaddleHeight,
		PaddleSpeed:       PaddleSpeed,
		PaddleMargin:      PaddleMargin,
		ReactionThreshold: ReactionThreshold,
		HitCooldownTicks:  HitCooldownTicks,
		ScoreFontSize:     ScoreFontSize,
		Background:        draw.Black,
		Foreground:        draw.White,
		Mode:              ModeVersusCPU,
		Boundary:          BoundaryScore,
	}
}

// Classic returns the two-board configuration with bouncing walls.
func Classic() Config {
	return Default().WithMode(ModeClassic)
}

// WithMode returns a copy of c running mode m with the matching boundary policy.
func (c Config) WithMode(m Mode) Config {
	c.Mode = m
	if m == ModeClassic {
		c.Boundary = BoundaryBounce
	} else {
		c.Boundary = BoundaryScore
	}
	return c
}

// LeftPaddleX returns the x coordinate of the left paddle.
func (c Config) LeftPaddleX() int {
	return c.PaddleMargin
}

// RightPaddleX returns the x coordinate of the right paddle.
func (c Config) RightPaddleX() int {
	return c.CourtWidth - c.PaddleMargin - c.PaddleWidth
}

// Validate reports whether the configuration can run a match.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.CourtWidth > 0 && c.CourtHeight > 0, "court %dx%d must be positive", c.CourtWidth, c.CourtHeight)
	check(c.TickRate > 0, "tick rate %d must be positive", c.TickRate)
	check(c.BallSpeedX >= 0 && c.BallSpeedY >= 0, "ball speed (%d, %d) must not be negative", c.BallSpeedX, c.BallSpeedY)
	check(c.BallRadius > 0, "ball radius %.1f must be positive", c.BallRadius)
	check(2*c.BallRadius < float64(c.CourtWidth) && 2*c.BallRadius < float64(c.CourtHeight),
		"ball radius %.1f does not fit the court", c.BallRadius)
	check(c.PaddleWidth > 0 && c.PaddleHeight > 0, "paddle %dx%d must be positive", c.PaddleWidth, c.PaddleHeight)
	check(c.PaddleHeight < c.CourtHeight, "paddle height %d must be below court height %d", c.PaddleHeight, c.CourtHeight)
	check(c.PaddleSpeed > 0, "paddle speed %d must be positive", c.PaddleSpeed)
	check(c.PaddleMargin >= 0 && 2*(c.PaddleMargin+c.PaddleWidth) < c.CourtWidth,
		"paddle margin %d leaves no room between paddles", c.PaddleMargin)
	check(c.ReactionThreshold >= 0, "reaction threshold %d must not be negative", c.ReactionThreshold)
	check(c.HitCooldownTicks >= 0, "hit cooldown %d must not be negative", c.HitCooldownTicks)

	return errors.Join(errs...)
}

// Environment variables read by FromEnv. The court size is fixed.
const (
	EnvMode         = "PONG_MODE"
	EnvTickRate     = "PONG_TICK_RATE"
	EnvBallSpeed    = "PONG_BALL_SPEED" // Both axes
	EnvBallRadius   = "PONG_BALL_RADIUS"
	EnvPaddleHeight = "PONG_PADDLE_HEIGHT"
	EnvPaddleSpeed  = "PONG_PADDLE_SPEED"
	EnvAIThreshold  = "PONG_AI_THRESHOLD"
	EnvHitCooldown  = "PONG_HIT_COOLDOWN"
)

// FromEnv overlays the environment on base and validates the result.
// On any error base is returned unchanged.
func FromEnv(base Config) (Config, error) {
	cfg := base

	if raw, ok := os.LookupEnv(EnvMode); ok {
		mode, err := ParseMode(raw)
		if err != nil {
			return base, err
		}
		cfg = cfg.WithMode(mode)
	}

	speed := cfg.BallSpeedX
	ints := []struct {
		key string
		dst *int
	}{
		{EnvTickRate, &cfg.TickRate},
		{EnvBallSpeed, &speed},
		{EnvPaddleHeight, &cfg.PaddleHeight},
		{EnvPaddleSpeed, &cfg.PaddleSpeed},
		{EnvAIThreshold, &cfg.ReactionThreshold},
		{EnvHitCooldown, &cfg.HitCooldownTicks},
	}
	for _, v := range ints {
		n, err := envconfig.GetEnvInt(v.key, *v.dst)
		if err != nil {
			return base, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		*v.dst = n
	}
	if speed != cfg.BallSpeedX {
		cfg.BallSpeedX, cfg.BallSpeedY = speed, speed
	}

	radius, err := envconfig.GetEnvFloat(EnvBallRadius, cfg.BallRadius)
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.BallRadius = radius

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
