package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	setup := func() (*MockManager, *slog.LevelVar, *cobra.Command) {
		mgr := &MockManager{}
		lazy := &LazyManager{inner: mgr}
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, logLevel, &stderr)
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		return mgr, logLevel, rootCmd
	}

	t.Run("execute help", func(t *testing.T) {
		t.Parallel()
		_, _, rootCmd := setup()
		rootCmd.SetArgs([]string{"--help"})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("version flag", func(t *testing.T) {
		t.Parallel()
		_, _, rootCmd := setup()
		rootCmd.SetArgs([]string{"--version"})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("bare invocation shows help", func(t *testing.T) {
		t.Parallel()
		_, _, rootCmd := setup()
		rootCmd.SetArgs([]string{})
		require.NoError(t, rootCmd.Execute())
	})

	t.Run("debug flag raises the log level", func(t *testing.T) {
		t.Parallel()
		_, logLevel, rootCmd := setup()
		rootCmd.SetArgs([]string{"--debug"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, slog.LevelDebug, logLevel.Level())
	})

	t.Run("completion skips manager hydration", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{}
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, logLevel, &stderr)
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)

		rootCmd.SetArgs([]string{"completion", "zsh"})
		require.NoError(t, rootCmd.Execute())
		assert.False(t, lazy.HasInner(), "manager should not have been hydrated")
	})

	t.Run("alternate no-colour spellings", func(t *testing.T) {
		t.Parallel()
		for _, variant := range []string{"--nocolor", "--noColor", "--noColour"} {
			variant := variant
			t.Run(variant, func(t *testing.T) {
				t.Parallel()
				_, _, rootCmd := setup()
				rootCmd.SetArgs([]string{"help", variant})
				require.NoError(t, rootCmd.Execute(), "flag %s should be recognised", variant)
			})
		}
	})

	t.Run("validate dispatches to the manager", func(t *testing.T) {
		t.Parallel()
		mgr, _, rootCmd := setup()
		mgr.On("ValidateDocument", mock.Anything, "params.yaml", "json", true, true).Return(nil)

		rootCmd.SetArgs([]string{"validate", "params.yaml", "-o", "json", "-v"})
		require.NoError(t, rootCmd.Execute())
		mgr.AssertExpectations(t)
	})

	t.Run("nocolour reaches the manager", func(t *testing.T) {
		t.Parallel()
		mgr, _, rootCmd := setup()
		mgr.On("ValidateDocument", mock.Anything, "params.yaml", "text", false, false).Return(nil)

		rootCmd.SetArgs([]string{"validate", "params.yaml", "--nocolour"})
		require.NoError(t, rootCmd.Execute())
		mgr.AssertExpectations(t)
	})

	t.Run("watch dispatches to the manager", func(t *testing.T) {
		t.Parallel()
		mgr, _, rootCmd := setup()
		mgr.On("WatchValidation", mock.Anything, "params.yaml", "text", false, true,
			mock.Anything).Return(nil)

		rootCmd.SetArgs([]string{"validate", "params.yaml", "--watch"})
		require.NoError(t, rootCmd.Execute())
		mgr.AssertExpectations(t)
	})

	t.Run("render writes the document to stdout", func(t *testing.T) {
		t.Parallel()
		mgr := &MockManager{}
		lazy := &LazyManager{inner: mgr}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, &slog.LevelVar{}, &stderr)
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		mgr.On("RenderDocument", mock.Anything, "params.yaml").
			Return([]byte("\\documentclass[tikz]{standalone}\n"), nil)

		rootCmd.SetArgs([]string{"render", "params.yaml"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, stdout.String(), `\documentclass[tikz]{standalone}`)
		mgr.AssertExpectations(t)
	})

	t.Run("fixtures dispatches to the manager", func(t *testing.T) {
		t.Parallel()
		mgr, _, rootCmd := setup()
		mgr.On("RunFixtures", mock.Anything, "manifest.yaml", 4, "text", false, true).Return(nil)

		rootCmd.SetArgs([]string{"fixtures", "manifest.yaml", "-j", "4"})
		require.NoError(t, rootCmd.Execute())
		mgr.AssertExpectations(t)
	})

	t.Run("init dispatches to the manager", func(t *testing.T) {
		t.Parallel()
		mgr, _, rootCmd := setup()
		mgr.On("WriteDefaultConfig", "out.yaml", true).Return(nil)

		rootCmd.SetArgs([]string{"init", "out.yaml", "--force"})
		require.NoError(t, rootCmd.Execute())
		mgr.AssertExpectations(t)
	})

	t.Run("validate rejects unknown output format", func(t *testing.T) {
		t.Parallel()
		_, _, rootCmd := setup()
		rootCmd.SetArgs([]string{"validate", "params.yaml", "-o", "xml"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be 'text' or 'json'")
	})

	t.Run("validate requires exactly one argument", func(t *testing.T) {
		t.Parallel()
		_, _, rootCmd := setup()
		rootCmd.SetArgs([]string{"validate"})
		require.Error(t, rootCmd.Execute())
	})
}
