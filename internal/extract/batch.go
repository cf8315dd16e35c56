// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

const transcriptExt = ".txt"

// Splitter segments a transcript into sentences.
type Splitter interface {
	Split(text string) []string
}

// Result is the outcome of extracting tasks from one transcript.
type Result struct {
	Transcript string       `json:"transcript" yaml:"transcript"`
	Sentences  []string     `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Tasks      []types.Task `json:"tasks" yaml:"tasks"`
}

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of transcripts processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any transcripts failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractFile reads one transcript file, segments it and extracts its tasks.
func ExtractFile(splitter Splitter, path string, members []types.TeamMember) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript %s: %w", path, err)
	}

	sentences := splitter.Split(string(content))
	return &Result{
		Transcript: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Sentences:  sentences,
		Tasks:      ExtractTasks(sentences, members),
	}, nil
}

// ExtractAll processes every *.txt transcript in cfg.TranscriptsDir and writes
// <name>-tasks.yaml (or .json) into cfg.OutputDir. Transcripts whose output is
// newer than the transcript are skipped. Progress lines go to w.
func ExtractAll(splitter Splitter, members []types.TeamMember, cfg types.ExtractionConfig, w io.Writer) (BatchSummary, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.TranscriptsDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading transcripts directory %s: %w", cfg.TranscriptsDir, err)
	}

	ext := outputExt(cfg.Format)

	var summary BatchSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), transcriptExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), transcriptExt)
		inPath := filepath.Join(cfg.TranscriptsDir, entry.Name())
		outPath := filepath.Join(cfg.OutputDir, name+"-tasks"+ext)

		changed, err := hasChanged(inPath, outPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		result, err := ExtractFile(splitter, inPath, members)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		result.Sentences = nil

		if err := writeResult(outPath, result, cfg.Format); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", name, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "extracted %s (%d tasks)\n", name, len(result.Tasks))
		summary.Extracted++
	}

	return summary, nil
}

// outputExt picks the file extension for batch output. Table output is for
// terminals only, so files fall back to YAML.
func outputExt(format types.OutputFormat) string {
	if format == types.OutputJSON {
		return ".json"
	}
	return ".yaml"
}

// hasChanged reports whether the transcript is newer than its output file.
// Returns true if the output does not exist.
func hasChanged(inPath, outPath string) (bool, error) {
	inInfo, err := os.Stat(inPath)
	if err != nil {
		return false, fmt.Errorf("stat transcript %s: %w", inPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return inInfo.ModTime().After(outInfo.ModTime()), nil
}

// writeResult marshals the result as JSON or YAML.
func writeResult(path string, result *Result, format types.OutputFormat) error {
	var (
		data []byte
		err  error
	)
	if format == types.OutputJSON {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = yaml.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
