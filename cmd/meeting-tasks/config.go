// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// LoadPipelineConfig overlays the keys set in v (config file or
// MEETING_TASKS_* environment) on DefaultPipelineConfig.
func LoadPipelineConfig(v *viper.Viper) (types.PipelineConfig, error) {
	cfg := types.DefaultPipelineConfig()

	t := &cfg.Transcription
	if v.IsSet("transcription.timeout") {
		t.Timeout = v.GetDuration("transcription.timeout")
	}
	if v.IsSet("transcription.user_agent") {
		t.UserAgent = v.GetString("transcription.user_agent")
	}
	if v.IsSet("transcription.model") {
		t.Model = v.GetString("transcription.model")
	}
	if v.IsSet("transcription.api_key") {
		t.APIKey = v.GetString("transcription.api_key")
	}
	if v.IsSet("transcription.base_url") {
		t.BaseURL = v.GetString("transcription.base_url")
	}
	if v.IsSet("transcription.max_retries") {
		t.MaxRetries = v.GetInt("transcription.max_retries")
	}

	e := &cfg.Extraction
	if v.IsSet("extraction.transcripts_dir") {
		e.TranscriptsDir = v.GetString("extraction.transcripts_dir")
	}
	if v.IsSet("extraction.output_dir") {
		e.OutputDir = v.GetString("extraction.output_dir")
	}
	if v.IsSet("extraction.team_file") {
		e.TeamFile = v.GetString("extraction.team_file")
	}
	if v.IsSet("extraction.format") {
		e.Format = types.OutputFormat(v.GetString("extraction.format"))
	}

	s := &cfg.Server
	if v.IsSet("server.addr") {
		s.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.max_upload_bytes") {
		s.MaxUploadBytes = v.GetInt64("server.max_upload_bytes")
	}

	if err := validateFormat(e.Format); err != nil {
		return cfg, err
	}
	if t.MaxRetries < 0 {
		return cfg, fmt.Errorf("transcription.max_retries must not be negative, got %d", t.MaxRetries)
	}
	if s.MaxUploadBytes <= 0 {
		return cfg, fmt.Errorf("server.max_upload_bytes must be positive, got %d", s.MaxUploadBytes)
	}
	return cfg, nil
}

func validateFormat(f types.OutputFormat) error {
	switch f {
	case types.OutputJSON, types.OutputYAML, types.OutputTable:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use json, yaml or table", f)
	}
}
