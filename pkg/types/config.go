// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "meeting-tasks/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TranscriptionConfig holds settings for the speech-to-text collaborator.
type TranscriptionConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the Whisper model identifier (default "whisper-large-v3").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the Groq API. Usually supplied through
	// GROQ_API_KEY, .env, or .secrets/groq-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL is the API root (default "https://api.groq.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputFormat selects how task lists are rendered.
type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputTable OutputFormat = "table"
)

// ExtractionConfig holds settings for file-based extraction runs.
type ExtractionConfig struct {
	// TranscriptsDir holds *.txt transcripts for batch runs.
	TranscriptsDir string `json:"transcripts_dir" yaml:"transcripts_dir"`

	// OutputDir receives <name>-tasks.yaml or .json files in batch runs.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TeamFile is a JSON or YAML list of team members.
	TeamFile string `json:"team_file" yaml:"team_file"`

	// Format selects the output format: json, yaml, or table.
	Format OutputFormat `json:"format" yaml:"format"`
}

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps the audio upload size (default 25 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Transcription TranscriptionConfig `json:"transcription" yaml:"transcription"`
	Extraction    ExtractionConfig    `json:"extraction" yaml:"extraction"`
	Server        ServerConfig        `json:"server" yaml:"server"`
}

// DefaultPipelineConfig returns the configuration used when no file or
// environment override is present.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Transcription: TranscriptionConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   120 * time.Second,
				UserAgent: "meeting-tasks/0.1",
			},
			Model:      "whisper-large-v3",
			BaseURL:    "https://api.groq.com",
			MaxRetries: 5,
		},
		Extraction: ExtractionConfig{
			TranscriptsDir: "transcripts",
			OutputDir:      "tasks",
			Format:         OutputJSON,
		},
		Server: ServerConfig{
			Addr:           ":8000",
			MaxUploadBytes: 25 << 20,
		},
	}
}
