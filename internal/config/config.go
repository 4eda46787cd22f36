package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvSeed       = "DODGE_SEED"
	EnvFrameDelay = "DODGE_FRAME_DELAY_MS"
	EnvMute       = "DODGE_MUTE"
	EnvLogLevel   = "DODGE_LOG_LEVEL"
	EnvLogFile    = "DODGE_LOG_FILE"
	EnvSSHHost    = "SSH_HOST"
	EnvSSHPort    = "SSH_PORT"
	EnvSSHHostKey = "SSH_HOST_KEY"
	EnvScale      = "WINDOW_SCALE"
)

// Config is the runtime configuration shared by all hosts.
type Config struct {
	Seed       int64         // 0 picks a time-based seed
	FrameDelay time.Duration // Pause at the end of every tick
	Mute       bool
	LogLevel   string
	LogFile    string // Empty means the host's default log output

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	WindowScale int // Window pixels per game pixel
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		FrameDelay:  16 * time.Millisecond,
		LogLevel:    "info",
		SSHHost:     "::",
		SSHPort:     "2222",
		SSHHostKey:  ".ssh/id_ed25519",
		WindowScale: 4,
	}
}

// Load reads optional .env files (".env" when none are named) into the
// environment and then builds a Config from it. Missing files are ignored;
// variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var errs []error

	seed, err := GetEnvInt(EnvSeed, cfg.Seed)
	errs = append(errs, err)
	cfg.Seed = seed

	delayMS, err := GetEnvInt(EnvFrameDelay, cfg.FrameDelay.Milliseconds())
	errs = append(errs, err)
	if delayMS < 0 {
		errs = append(errs, fmt.Errorf("%s: must not be negative", EnvFrameDelay))
		delayMS = 0
	}
	cfg.FrameDelay = time.Duration(delayMS) * time.Millisecond

	cfg.Mute, err = GetEnvBool(EnvMute, cfg.Mute)
	errs = append(errs, err)

	scale, err := GetEnvInt(EnvScale, int64(cfg.WindowScale))
	errs = append(errs, err)
	if scale < 1 {
		errs = append(errs, fmt.Errorf("%s: must be at least 1", EnvScale))
		scale = 1
	}
	cfg.WindowScale = int(scale)

	cfg.LogLevel = GetEnv(EnvLogLevel, cfg.LogLevel)
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
	}
	cfg.LogFile = GetEnv(EnvLogFile, cfg.LogFile)
	cfg.SSHHost = GetEnv(EnvSSHHost, cfg.SSHHost)
	cfg.SSHPort = GetEnv(EnvSSHPort, cfg.SSHPort)
	cfg.SSHHostKey = GetEnv(EnvSSHHostKey, cfg.SSHHostKey)

	return cfg, errors.Join(errs...)
}

// SeedOrNow returns Seed, or the current time when Seed is 0.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger creates the logger described by c. Output goes to LogFile when it
// is set, otherwise to fallback. The returned close function releases the file.
func (c Config) NewLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	out := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
