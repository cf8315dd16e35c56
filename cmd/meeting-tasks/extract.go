// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-tasks/internal/extract"
	"github.com/pdiddy/meeting-tasks/internal/segment"
	"github.com/pdiddy/meeting-tasks/internal/team"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [transcript.txt]",
	Short: "Extract tasks from a transcript file",
	Long: `Extract splits a transcript into sentences, keeps the ones that describe
action items, and prints one task per kept sentence.

With --batch, every *.txt file in the transcripts directory is processed and
the results are written to <output-dir>/<name>-tasks.json (or .yaml).
Transcripts whose output is already newer are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractionConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.TeamFile == "" {
		return fmt.Errorf("team file required: pass --team or set extraction.team_file")
	}
	members, err := team.LoadFile(cfg.TeamFile)
	if err != nil {
		return err
	}

	seg := segment.New(logger)

	batch, _ := cmd.Flags().GetBool("batch")
	if batch {
		if cfg.Format == types.OutputTable {
			return fmt.Errorf("batch output supports json or yaml, not table")
		}
		summary, err := extract.ExtractAll(seg, members, cfg, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%d transcripts: %d extracted, %d skipped, %d failed\n",
			summary.Total(), summary.Extracted, summary.Skipped, summary.Failed)
		if summary.HasFailures() {
			return fmt.Errorf("%d transcript(s) failed extraction", summary.Failed)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("transcript path required (or use --batch)")
	}

	result, err := extract.ExtractFile(seg, args[0], members)
	if err != nil {
		return err
	}

	showSentences, _ := cmd.Flags().GetBool("show-sentences")
	if showSentences {
		fmt.Fprintf(os.Stderr, "%d sentences:\n", len(result.Sentences))
		for i, s := range result.Sentences {
			fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, s)
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeTasks(os.Stdout, result.Tasks, cfg.Format)
}

// extractionConfig loads the extraction settings and applies flag overrides.
func extractionConfig(cmd *cobra.Command) (types.ExtractionConfig, error) {
	pc, err := LoadPipelineConfig(viper.GetViper())
	if err != nil {
		return types.ExtractionConfig{}, err
	}
	cfg := pc.Extraction

	if cmd.Flags().Changed("team") {
		cfg.TeamFile, _ = cmd.Flags().GetString("team")
	}
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		cfg.Format = types.OutputFormat(f)
	}
	if cmd.Flags().Changed("transcripts-dir") {
		cfg.TranscriptsDir, _ = cmd.Flags().GetString("transcripts-dir")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	return cfg, validateFormat(cfg.Format)
}

func init() {
	extractCmd.Flags().String("team", "", "team members file (.json, .yaml or .yml)")
	extractCmd.Flags().String("format", "json", "output format: json, yaml or table")
	extractCmd.Flags().Bool("show-sentences", false, "print the segmented sentences to stderr")
	extractCmd.Flags().Bool("batch", false, "process every transcript in the transcripts directory")
	extractCmd.Flags().String("transcripts-dir", "transcripts", "directory of *.txt transcripts for --batch")
	extractCmd.Flags().String("output-dir", "tasks", "directory for --batch output files")

	rootCmd.AddCommand(extractCmd)
}
