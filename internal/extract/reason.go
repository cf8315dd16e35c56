// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// reasonConnectives introduce an explicit reason, in precedence order.
var reasonConnectives = []struct {
	trigger string
	label   string
}{
	{"because", "because"},
	{"since", "since"},
	{" as ", "as"},
	{"so that", "so that"},
}

// ReasonForTask explains the task. An explicit reason in the sentence
// ("because", "since", " as ", "so that") wins; otherwise the reason is
// synthesized from the assignee, priority and dependencies.
func ReasonForTask(sentence, assignee string, priority types.Priority, deps []int, members []types.TeamMember) (string, bool) {
	lower := strings.ToLower(sentence)

	for _, c := range reasonConnectives {
		if _, rest, found := strings.Cut(lower, c.trigger); found {
			return c.label + " " + strings.Trim(rest, " ,."), true
		}
	}

	var parts []string

	skills := skillsOf(assignee, members)
	switch {
	case assignee == "":
		parts = append(parts, "No specific assignee mentioned in the transcript.")
	case len(skills) > 0:
		parts = append(parts, fmt.Sprintf("Assigned to %s because their skills (%s) match the task.",
			assignee, strings.Join(skills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Assigned to %s because they were mentioned in the meeting.", assignee))
	}

	switch priority {
	case types.PriorityCritical:
		parts = append(parts, "Marked critical based on urgency/impact keywords in the sentence.")
	case types.PriorityHigh:
		parts = append(parts, "Marked high priority based on priority-related keywords.")
	case types.PriorityLow:
		parts = append(parts, "Marked low priority because the language suggests it can wait.")
	}

	if len(deps) > 0 {
		strs := make([]string, len(deps))
		for i, d := range deps {
			strs[i] = fmt.Sprint(d)
		}
		parts = append(parts, fmt.Sprintf("This task depends on tasks: %s.", strings.Join(strs, ", ")))
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// skillsOf returns the skills of the first member named exactly name.
func skillsOf(name string, members []types.TeamMember) []string {
	for _, m := range members {
		if m.Name == name {
			return m.Skills
		}
	}
	return nil
}
