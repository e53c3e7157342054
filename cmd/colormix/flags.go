package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

func validateRootOptions(opts rootOptions) error {
	if _, err := zerolog.ParseLevel(strings.ToLower(opts.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}

	if strings.TrimSpace(opts.ConfigPath) == "" {
		return nil
	}

	abs, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
