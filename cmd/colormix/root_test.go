package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/colormix/pkg/errors"
)

func stubRunner(t *testing.T) *rootOptions {
	t.Helper()
	original := composerRunner
	t.Cleanup(func() { composerRunner = original })

	captured := &rootOptions{}
	composerRunner = func(_ *cobra.Command, opts rootOptions) error {
		*captured = opts
		return nil
	}
	return captured
}

func TestRootCommandPassesFlags(t *testing.T) {
	captured := stubRunner(t)

	path := filepath.Join(t.TempDir(), "colormix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\n"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "--seed", "9", "--log-level", "debug", "--log-file", "/tmp/colormix.log"})
	require.NoError(t, root.Execute())

	require.Equal(t, path, captured.ConfigPath)
	require.EqualValues(t, 9, captured.Seed)
	require.True(t, captured.SeedSet)
	require.Equal(t, "debug", captured.LogLevel)
	require.Equal(t, "/tmp/colormix.log", captured.LogFile)
}

func TestRootCommandDefaults(t *testing.T) {
	captured := stubRunner(t)

	root := newRootCmd()
	root.SetArgs([]string{})
	require.NoError(t, root.Execute())

	require.Empty(t, captured.ConfigPath)
	require.False(t, captured.SeedSet)
	require.Equal(t, "info", captured.LogLevel)
}

func TestRootCommandRejectsBadOptions(t *testing.T) {
	stubRunner(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, "config file does not exist"},
		{"config is directory", []string{"--config", t.TempDir()}, "is a directory"},
		{"bad log level", []string{"--log-level", "chatty"}, "invalid log level"},
		{"positional args", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tt.args)
			err := root.Execute()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunComposerReportsConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colormix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("swatch:\n  width: 1\n"), 0o644))

	err := runComposer(newRootCmd(), rootOptions{ConfigPath: path, LogLevel: "info"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "swatch.width", validationErr.Field)
}

func TestRunComposerRequiresTerminal(t *testing.T) {
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }

	err := runComposer(newRootCmd(), rootOptions{LogLevel: "info"})
	require.ErrorIs(t, err, errNotTerminal)
}

func TestSeededRand(t *testing.T) {
	t.Parallel()

	require.Nil(t, seededRand(nil))

	seed := uint64(5)
	a, b := seededRand(&seed), seededRand(&seed)
	require.Equal(t, a.Float64(), b.Float64())
}
