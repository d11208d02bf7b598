// SPDX-License-Identifier: MIT

// Package config reads runtime settings from the environment.
//
// Load reads the .env file named by COFACTOR_ENV (or .env); values already
// present in the environment win. Every getter falls back to a default when
// its variable is unset or malformed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Load reads the .env file specified by COFACTOR_ENV (or .env by default).
// A missing file is not an error.
func Load() error {
	envFile := os.Getenv("COFACTOR_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: load %s: %w", envFile, err)
	}

	return nil
}

// MaxOrder returns the largest matrix order the CLI and server accept.
// Defaults to 10; cofactor expansion is O(n!).
func MaxOrder() int {
	n, err := strconv.Atoi(os.Getenv("MAX_ORDER"))
	if err != nil || n <= 0 {
		return 10
	}
	return n
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// ServerPort returns the HTTP listen port.
// Defaults to 8080 if not set or not positive.
func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

// ServerAddr returns the listen address ":<port>".
func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// RateLimitRPS returns requests per second allowed per client.
// Defaults to 20 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 20
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 5 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 5
	}
	return burst
}

// Strategy returns the determinant driver name (recursive, iterative).
// Defaults to "recursive" if not set.
func Strategy() string {
	s := strings.ToLower(os.Getenv("DET_STRATEGY"))
	if s == "" {
		return "recursive"
	}
	return s
}

// BlankAsZero reports whether blank input cells read as 0.
func BlankAsZero() bool {
	v, err := strconv.ParseBool(os.Getenv("BLANK_AS_ZERO"))
	return err == nil && v
}

// NewLogger builds a production JSON logger writing to stderr at level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
