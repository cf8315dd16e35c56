// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// writeTasks renders tasks to w in the requested format.
func writeTasks(w io.Writer, tasks []types.Task, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	case types.OutputTable:
		return writeTaskTable(w, tasks)
	default:
		return validateFormat(format)
	}
}

func writeTaskTable(w io.Writer, tasks []types.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}

	fmt.Fprintf(w, "%-3s  %-8s  %-12s  %-14s  %-8s  %s\n",
		"ID", "Priority", "Assignee", "Deadline", "Deps", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, t := range tasks {
		assignee := "-"
		if t.AssignedTo != nil {
			assignee = truncate(*t.AssignedTo, 12)
		}
		deadline := "-"
		if t.Deadline != nil {
			deadline = truncate(*t.Deadline, 14)
		}
		deps := make([]string, len(t.Dependencies))
		for i, d := range t.Dependencies {
			deps[i] = strconv.Itoa(d)
		}
		depCol := "-"
		if len(deps) > 0 {
			depCol = strings.Join(deps, ",")
		}
		fmt.Fprintf(w, "%-3d  %-8s  %-12s  %-14s  %-8s  %s\n",
			t.ID, t.Priority, assignee, deadline, depCol, truncate(t.Description, 50))
	}

	_, err := fmt.Fprintf(w, "\n%d tasks\n", len(tasks))
	return err
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
