// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-tasks/internal/segment"
	"github.com/pdiddy/meeting-tasks/internal/server"
	"github.com/pdiddy/meeting-tasks/internal/transcribe"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Serve exposes the extraction pipeline over HTTP:

  GET  /               health check
  POST /process-text   {"transcript": ..., "team_members": [...]}
  POST /process-audio  multipart audio_file + team_members_json

Without a Groq API key the service still runs, and /process-audio answers 503.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	pc, err := LoadPipelineConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		pc.Server.Addr, _ = cmd.Flags().GetString("addr")
	}

	var tr transcribe.Transcriber
	backend, err := groqBackend(pc.Transcription)
	switch {
	case errors.Is(err, transcribe.ErrMissingAPIKey):
		logger.Warn("no Groq API key, audio processing disabled")
	case err != nil:
		return err
	default:
		tr = backend
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(pc.Server, segment.New(logger), tr, logger)
	logger.Debug("server configured", slog.Int64("max_upload_bytes", pc.Server.MaxUploadBytes))
	return srv.Run(ctx, pc.Server.Addr)
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "listen address")

	rootCmd.AddCommand(serveCmd)
}
