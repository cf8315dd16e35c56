// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns transcript sentences into structured tasks.
//
// The pipeline is heuristic and pure: each sentence is classified, and
// accepted sentences get an assignee, description, priority, deadline,
// dependencies on earlier tasks, and a reason. Runs share no state, so
// callers may extract from several transcripts concurrently.
package extract

import "github.com/pdiddy/meeting-tasks/pkg/types"

// ExtractTasks folds the sentences into a task list. Sentences rejected by
// IsTaskSentence consume no id; accepted ones are numbered from 1 in
// transcript order. The returned slice is never nil.
func ExtractTasks(sentences []string, members []types.TeamMember) []types.Task {
	tasks := make([]types.Task, 0, len(sentences))
	for _, sentence := range sentences {
		tasks = appendTask(tasks, sentence, members)
	}
	return tasks
}

// appendTask is the fold step. Dependency extraction only sees tasks, which
// holds exactly the tasks assembled before this sentence.
func appendTask(tasks []types.Task, sentence string, members []types.TeamMember) []types.Task {
	if !IsTaskSentence(sentence) {
		return tasks
	}

	assignee, assigned := FindAssignedMember(sentence, members)
	description := CleanDescription(sentence, assignee)
	priority := PriorityFromSentence(sentence)
	deadline, hasDeadline := DeadlineFromSentence(sentence)
	deps := DependenciesForSentence(sentence, tasks, members)
	reason, hasReason := ReasonForTask(sentence, assignee, priority, deps, members)

	task := types.Task{
		ID:           len(tasks) + 1,
		Description:  description,
		Priority:     priority,
		Dependencies: deps,
	}
	if assigned {
		task.AssignedTo = &assignee
	}
	if hasDeadline {
		task.Deadline = &deadline
	}
	if hasReason {
		task.Reason = &reason
	}

	return append(tasks, task)
}
