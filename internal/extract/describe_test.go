// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		assignee string
		want     string
	}{
		{
			name:     "name with comma then lead-in",
			sentence: "Alice, we need to fix the login bug by tomorrow because it's blocking users.",
			assignee: "Alice",
			want:     "fix the login bug by tomorrow because it's blocking users.",
		},
		{"name with colon", "Bob: please review the PR", "Bob", "review the PR"},
		{"bare name", "Bob review the PR", "Bob", "review the PR"},
		{"name not leading", "Can you update the docs, Carol?", "Carol", "update the docs, Carol?"},
		{"name match is case-sensitive", "alice, fix it", "Alice", "alice, fix it"},
		{"longer lead-in first", "We need someone to write tests", "", "write tests"},
		{"lead-in stripped once", "Please please deploy", "", "please deploy"},
		{"lead-in only at the front", "Deploy it, please", "", "Deploy it, please"},
		{"lead-in casing ignored", "LET'S Ship It", "", "Ship It"},
		{"surrounding space trimmed", "   I want you to rotate the keys  ", "", "rotate the keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.sentence, tt.assignee))
		})
	}
}

func TestReasonForTask_ExplicitConnectives(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"because", "Alice, we need to fix the login bug by tomorrow because it's blocking users.", "because it's blocking users"},
		{"since is lower-cased", "Fix it since the build is RED.", "since the build is red"},
		{"as needs spaces", "Update the docs as requested.", "as requested"},
		{"so that", "Refactor the parser so that tests pass, ok.", "so that tests pass, ok"},
		{"because wins over since", "Fix it because of the outage since Monday.", "because of the outage since monday"},
	}
	team := testTeam()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReasonForTask(tt.sentence, "Alice", types.PriorityCritical, []int{1}, team)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReasonForTask_Synthesized(t *testing.T) {
	team := []types.TeamMember{
		{Name: "Alice", Skills: []string{"backend", "go"}},
		{Name: "Bob"},
	}

	tests := []struct {
		name     string
		assignee string
		priority types.Priority
		deps     []int
		want     string
	}{
		{
			name:     "skills, critical, dependencies",
			assignee: "Alice",
			priority: types.PriorityCritical,
			deps:     []int{1, 3},
			want:     "Assigned to Alice because their skills (backend, go) match the task. Marked critical based on urgency/impact keywords in the sentence. This task depends on tasks: 1, 3.",
		},
		{
			name:     "no skills, high",
			assignee: "Bob",
			priority: types.PriorityHigh,
			want:     "Assigned to Bob because they were mentioned in the meeting. Marked high priority based on priority-related keywords.",
		},
		{
			name:     "unassigned, low",
			priority: types.PriorityLow,
			want:     "No specific assignee mentioned in the transcript. Marked low priority because the language suggests it can wait.",
		},
		{
			name:     "unassigned, medium",
			priority: types.PriorityMedium,
			want:     "No specific assignee mentioned in the transcript.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReasonForTask("Fix the cache.", tt.assignee, tt.priority, tt.deps, team)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
