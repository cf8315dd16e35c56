// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-tasks/internal/extract"
	"github.com/pdiddy/meeting-tasks/internal/secrets"
	"github.com/pdiddy/meeting-tasks/internal/segment"
	"github.com/pdiddy/meeting-tasks/internal/team"
	"github.com/pdiddy/meeting-tasks/internal/transcribe"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio>",
	Short: "Transcribe a meeting recording with the Groq Whisper API",
	Long: `Transcribe uploads an audio file to the Groq speech-to-text API and
prints the transcript. With --extract, the transcript is run through the task
extraction pipeline and the tasks are printed instead.

The API key is read from GROQ_API_KEY, .env, or .secrets/groq-api-key.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	pc, err := LoadPipelineConfig(viper.GetViper())
	if err != nil {
		return err
	}
	tc := pc.Transcription
	if cmd.Flags().Changed("model") {
		tc.Model, _ = cmd.Flags().GetString("model")
	}

	backend, err := groqBackend(tc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("transcribing", "file", args[0], "model", tc.Model)
	text, err := transcribe.TranscribeFile(ctx, backend, args[0])
	if err != nil {
		return err
	}

	doExtract, _ := cmd.Flags().GetBool("extract")
	if !doExtract {
		fmt.Println(text)
		return nil
	}

	cfg, err := extractionConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.TeamFile == "" {
		return fmt.Errorf("--extract requires a team file: pass --team or set extraction.team_file")
	}
	members, err := team.LoadFile(cfg.TeamFile)
	if err != nil {
		return err
	}

	tasks := extract.ExtractTasks(segment.New(logger).Split(text), members)
	return writeTasks(os.Stdout, tasks, cfg.Format)
}

// groqBackend resolves the API key and builds the Groq client.
func groqBackend(tc types.TranscriptionConfig) (*transcribe.GroqBackend, error) {
	tc.APIKey = loadedSecrets.Resolve(tc.APIKey, secrets.GroqAPIKeyEnv, secrets.GroqAPIKeyFile)
	if tc.APIKey == "" {
		return nil, transcribe.ErrMissingAPIKey
	}
	return transcribe.NewGroqBackend(tc), nil
}

func init() {
	transcribeCmd.Flags().String("model", "", "Whisper model identifier (default from config)")
	transcribeCmd.Flags().Bool("extract", false, "extract tasks from the transcript")
	transcribeCmd.Flags().String("team", "", "team members file for --extract")
	transcribeCmd.Flags().String("format", "json", "output format for --extract: json, yaml or table")

	rootCmd.AddCommand(transcribeCmd)
}
