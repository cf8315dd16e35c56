// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meeting-tasks CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-tasks/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ and .env at startup.
var loadedSecrets *secrets.Store

// logger is configured from --log-level before any command runs.
var logger = slog.Default()

// rootCmd is the base command for the meeting-tasks CLI.
var rootCmd = &cobra.Command{
	Use:   "meeting-tasks",
	Short: "Turn meeting transcripts into assigned, prioritized tasks",
	Long: `meeting-tasks reads a meeting transcript (or transcribes a recording),
finds the sentences that describe action items, and turns each into a task
with an assignee, priority, deadline, dependencies, and a reason.

Use extract for transcript files, transcribe for audio, and serve to run the
HTTP service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		l, err := newLogger(level)
		if err != nil {
			return err
		}
		logger = l

		s, err := secrets.Load(".secrets/", ".env")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if names := s.Names(); len(names) > 0 {
			sort.Strings(names)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", names)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meeting-tasks.yaml or ~/.config/meeting-tasks/meeting-tasks.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meeting-tasks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meeting-tasks"))
		}
	}

	viper.SetEnvPrefix("MEETING_TASKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
