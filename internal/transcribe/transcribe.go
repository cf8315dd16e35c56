// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcribe converts meeting audio into transcript text through a
// speech-to-text service.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/meeting-tasks/internal/httputil"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// ErrMissingAPIKey is returned when the backend has no API key configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// Transcriber turns an audio stream into a single transcript string.
// Failures are returned to the caller; the extraction pipeline never retries.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

const transcriptionsPath = "/openai/v1/audio/transcriptions"

// GroqBackend calls the Groq Whisper transcription endpoint, which follows
// the OpenAI audio API.
type GroqBackend struct {
	APIKey     string
	Model      string
	BaseURL    string
	UserAgent  string
	MaxRetries int
	Client     *http.Client
}

// NewGroqBackend builds a backend from the transcription config.
func NewGroqBackend(cfg types.TranscriptionConfig) *GroqBackend {
	return &GroqBackend{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
		Client:     &http.Client{Timeout: cfg.Timeout},
	}
}

// groqResponse is the subset of the verbose_json transcription we use.
type groqResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// Transcribe uploads the audio and returns the transcript text.
func (g *GroqBackend) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if g.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body, contentType, err := g.encodeForm(filename, audio)
	if err != nil {
		return "", fmt.Errorf("encoding upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	if g.UserAgent != "" {
		req.Header.Set("User-Agent", g.UserAgent)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, g.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling Groq API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Groq API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var gr groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decoding Groq response: %w", err)
	}
	return gr.Text, nil
}

func (g *GroqBackend) endpoint() string {
	base := g.BaseURL
	if base == "" {
		base = "https://api.groq.com"
	}
	return strings.TrimRight(base, "/") + transcriptionsPath
}

// encodeForm builds the multipart body. It is buffered so retries can
// resend it.
func (g *GroqBackend) encodeForm(filename string, audio io.Reader) ([]byte, string, error) {
	model := g.Model
	if model == "" {
		model = "whisper-large-v3"
	}
	if filename == "" {
		filename = "audio.wav"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, "", fmt.Errorf("reading audio: %w", err)
	}

	fields := [][2]string{
		{"model", model},
		{"temperature", "0"},
		{"response_format", "verbose_json"},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

// TranscribeFile opens the audio file at path and transcribes it.
func TranscribeFile(ctx context.Context, t Transcriber, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("audio file not found: %s: %w", path, err)
		}
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	return t.Transcribe(ctx, filepath.Base(path), f)
}
