// Package config loads the game settings. Values are layered: built-in
// defaults, then a .env file, then SNAKE_* environment variables, then
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"snake-arcade/game"

	"github.com/joho/godotenv"
)

const (
	FrontendRaylib = "raylib"
	FrontendTerm   = "term"
)

type Config struct {
	Width          int
	Height         int
	CellSize       int
	FPS            int
	TickInterval   time.Duration
	IntervalStep   time.Duration
	MinInterval    time.Duration
	Reward         int
	StartLength    int
	SwipeThreshold float64
	Frontend       string
	Sound          bool
	ScoresDB       string // empty disables score history
	Seed           uint64 // 0 seeds from the clock
	Autopilot      bool
}

func Default() *Config {
	rules := game.DefaultRules()
	return &Config{
		Width:          20,
		Height:         20,
		CellSize:       24,
		FPS:            60,
		TickInterval:   rules.BaseInterval,
		IntervalStep:   rules.IntervalStep,
		MinInterval:    rules.MinInterval,
		Reward:         rules.Reward,
		StartLength:    rules.StartLength,
		SwipeThreshold: 30,
		Frontend:       FrontendRaylib,
		Sound:          true,
	}
}

// Load builds the configuration from ./.env, the environment and args.
func Load(args []string) (*Config, error) {
	return load(".env", args)
}

func load(envFile string, args []string) (*Config, error) {
	cfg := Default()

	vars, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	if vars == nil {
		vars = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("snake", flag.ContinueOnError)
	flags.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flags.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (raylib)")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate")
	flags.DurationVar(&cfg.TickInterval, "speed", cfg.TickInterval, "initial tick interval")
	flags.DurationVar(&cfg.IntervalStep, "step", cfg.IntervalStep, "interval decrease per food")
	flags.DurationVar(&cfg.MinInterval, "min-speed", cfg.MinInterval, "fastest tick interval")
	flags.IntVar(&cfg.Reward, "reward", cfg.Reward, "score per food")
	flags.IntVar(&cfg.StartLength, "length", cfg.StartLength, "starting snake length")
	flags.Float64Var(&cfg.SwipeThreshold, "swipe", cfg.SwipeThreshold, "minimum swipe distance in pixels")
	flags.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "raylib or term")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	flags.StringVar(&cfg.ScoresDB, "scores", cfg.ScoresDB, "sqlite file for score history")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flags.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the computer play")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"SNAKE_WIDTH":     &c.Width,
		"SNAKE_HEIGHT":    &c.Height,
		"SNAKE_CELL_SIZE": &c.CellSize,
		"SNAKE_FPS":       &c.FPS,
		"SNAKE_REWARD":    &c.Reward,
		"SNAKE_LENGTH":    &c.StartLength,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"SNAKE_SPEED":     &c.TickInterval,
		"SNAKE_STEP":      &c.IntervalStep,
		"SNAKE_MIN_SPEED": &c.MinInterval,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}

	bools := map[string]*bool{
		"SNAKE_SOUND":     &c.Sound,
		"SNAKE_AUTOPILOT": &c.Autopilot,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}

	if v, ok := lookup("SNAKE_SWIPE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SWIPE: %w", err)
		}
		c.SwipeThreshold = f
	}
	if v, ok := lookup("SNAKE_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = n
	}
	if v, ok := lookup("SNAKE_FRONTEND"); ok {
		c.Frontend = v
	}
	if v, ok := lookup("SNAKE_SCORES"); ok {
		c.ScoresDB = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("grid %dx%d must be at least 1x1", c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	case c.FPS < 1:
		return fmt.Errorf("fps %d must be positive", c.FPS)
	case c.TickInterval <= 0 || c.MinInterval <= 0:
		return fmt.Errorf("tick intervals must be positive")
	case c.IntervalStep < 0:
		return fmt.Errorf("interval step %s must not be negative", c.IntervalStep)
	case c.MinInterval > c.TickInterval:
		return fmt.Errorf("min interval %s exceeds base interval %s", c.MinInterval, c.TickInterval)
	case c.StartLength < 1:
		return fmt.Errorf("start length %d must be positive", c.StartLength)
	case c.Width*c.Height <= c.StartLength:
		return fmt.Errorf("grid %dx%d leaves no room for food next to a snake of length %d", c.Width, c.Height, c.StartLength)
	case c.Reward < 0:
		return fmt.Errorf("reward %d must not be negative", c.Reward)
	case c.Frontend != FrontendRaylib && c.Frontend != FrontendTerm:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// Rules returns the session rules described by c.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		Reward:       c.Reward,
		BaseInterval: c.TickInterval,
		IntervalStep: c.IntervalStep,
		MinInterval:  c.MinInterval,
		StartLength:  c.StartLength,
	}
}
