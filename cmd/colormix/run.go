package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/colormix/internal/config"
	"github.com/alexisbeaulieu97/colormix/internal/logger"
	"github.com/alexisbeaulieu97/colormix/internal/tui/composer"
)

var errNotTerminal = errors.New("colormix needs an interactive terminal")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runComposer(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.SeedSet {
		seed := opts.Seed
		cfg.Seed = &seed
	}

	if !stdoutIsTerminal() {
		return errNotTerminal
	}

	var out io.Writer = io.Discard
	if opts.LogFile != "" {
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		out = file
	}

	log, err := logger.New(logger.Options{Level: opts.LogLevel, Writer: out})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	model := composer.NewModel(composer.Options{
		Config: cfg,
		Rand:   seededRand(cfg.Seed),
		Logger: log,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "composer execution failed")
		return fmt.Errorf("failed to run composer: %w", err)
	}

	return nil
}

// seededRand returns a deterministic source for seed, or nil for a fresh one.
func seededRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}
