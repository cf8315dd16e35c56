// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// DependenciesForSentence infers links from the sentence to tasks assembled
// earlier in the same run. Three rules contribute ids in order: "depends on
// <phrase>", "once <member> ... done", and "after <phrase>". The result holds
// no duplicates and keeps first-occurrence order. Only earlier tasks are
// consulted, so a task can never depend on itself or a later task.
func DependenciesForSentence(sentence string, earlier []types.Task, members []types.TeamMember) []int {
	lower := strings.ToLower(sentence)

	var ids []int
	ids = append(ids, phraseDependencies(lower, "depends on", earlier)...)
	ids = append(ids, memberDependencies(lower, earlier, members)...)
	ids = append(ids, phraseDependencies(lower, "after", earlier)...)

	return dedupe(ids)
}

// phraseDependencies returns every earlier task whose description contains
// the phrase following trigger, cut at the first comma or period.
func phraseDependencies(lower, trigger string, earlier []types.Task) []int {
	_, rest, found := strings.Cut(lower, trigger)
	if !found {
		return nil
	}
	rest, _, _ = strings.Cut(rest, ",")
	rest, _, _ = strings.Cut(rest, ".")
	phrase := strings.TrimSpace(rest)
	if phrase == "" {
		return nil
	}

	var ids []int
	for _, t := range earlier {
		if strings.Contains(strings.ToLower(t.Description), phrase) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// memberDependencies handles "once <member> is done": the first member named
// between "once" and the following "done" contributes the id of their most
// recent earlier task, if any. At most one id is returned.
func memberDependencies(lower string, earlier []types.Task, members []types.TeamMember) []int {
	if !strings.Contains(lower, "once") || !strings.Contains(lower, "done") {
		return nil
	}

	_, afterOnce, _ := strings.Cut(lower, "once")
	middle, _, found := strings.Cut(afterOnce, "done")
	if !found {
		return nil
	}
	middle = strings.Trim(middle, " ,.")

	for _, m := range members {
		if m.Name == "" || !strings.Contains(middle, strings.ToLower(m.Name)) {
			continue
		}
		for i := len(earlier) - 1; i >= 0; i-- {
			if name, ok := earlier[i].Assignee(); ok && name == m.Name {
				return []int{earlier[i].ID}
			}
		}
		return nil
	}
	return nil
}

// dedupe drops repeated ids, keeping the first occurrence. It never returns nil.
func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
