// Package config reads game settings from the built-in defaults, an optional
// .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fishing/internal/assets"
)

const (
	KeyWidth  = "FISHING_WIDTH"
	KeyHeight = "FISHING_HEIGHT"
	KeyScale  = "FISHING_SCALE"
	KeyTitle  = "FISHING_TITLE"
	KeySeed   = "FISHING_SEED"
	KeyMute   = "FISHING_MUTE"
	KeyDebug  = "FISHING_DEBUG"
)

type Config struct {
	Width  int
	Height int
	Scale  int // window size multiplier
	Title  string
	Seed   int64 // 0 picks a seed from the clock
	Mute   bool
	Debug  bool
}

// Load builds a Config. Files that do not exist are skipped; with no files
// given, ".env" in the working directory is tried.
func Load(files ...string) (Config, error) {
	env, err := godotenv.Parse(assets.Defaults())
	if err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// Load never overrides variables already set in the environment
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	for k := range env {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return parse(env)
}

func parse(env map[string]string) (Config, error) {
	var c Config
	var err error

	if c.Width, err = positive(env, KeyWidth); err != nil {
		return Config{}, err
	}
	if c.Height, err = positive(env, KeyHeight); err != nil {
		return Config{}, err
	}
	if c.Scale, err = positive(env, KeyScale); err != nil {
		return Config{}, err
	}
	if c.Seed, err = strconv.ParseInt(env[KeySeed], 10, 64); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeySeed, err)
	}
	if c.Mute, err = strconv.ParseBool(env[KeyMute]); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyMute, err)
	}
	if c.Debug, err = strconv.ParseBool(env[KeyDebug]); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyDebug, err)
	}
	c.Title = env[KeyTitle]

	return c, nil
}

func positive(env map[string]string, key string) (int, error) {
	n, err := strconv.Atoi(env[key])
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, n)
	}
	return n, nil
}
