// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrMissingName is returned when a TeamMember has no name.
var ErrMissingName = errors.New("team member name is required")

// TeamMember is a meeting participant supplied by the caller. Members have no
// identity beyond Name; sentences refer to them by case-insensitive substring.
type TeamMember struct {
	// Name is matched against sentence text and copied verbatim into
	// Task.AssignedTo.
	Name string `json:"name" yaml:"name"`

	// Role is informational only (e.g. "backend engineer").
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// Skills are listed in the reason of tasks assigned to this member.
	Skills []string `json:"skills" yaml:"skills"`
}

// Validate reports whether the member carries the fields the pipeline needs.
func (m TeamMember) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	return nil
}

// ValidateMembers checks every member and reports the first invalid one by
// position.
func ValidateMembers(members []TeamMember) error {
	for i, m := range members {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("team member %d: %w", i, err)
		}
	}
	return nil
}

// Priority ranks a task by urgency.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Task is an action item derived from one transcript sentence. Tasks are
// created once by the extraction pipeline and never modified afterward.
type Task struct {
	// ID is the 1-based position of the task among accepted sentences.
	ID int `json:"id" yaml:"id"`

	// Description is the sentence with the addressee and polite lead-in removed.
	Description string `json:"description" yaml:"description"`

	// AssignedTo is the Name of the first matching TeamMember, or nil.
	AssignedTo *string `json:"assigned_to" yaml:"assigned_to"`

	// Deadline is a span copied from the sentence in its original casing, or nil.
	Deadline *string `json:"deadline" yaml:"deadline"`

	// Priority defaults to Medium.
	Priority Priority `json:"priority" yaml:"priority"`

	// Dependencies lists ids of earlier tasks in first-discovered order.
	Dependencies []int `json:"dependencies" yaml:"dependencies"`

	// Reason explains why the task exists or how its attributes were chosen.
	Reason *string `json:"reason" yaml:"reason"`
}

// Assignee returns the assigned member name and whether one is set.
func (t Task) Assignee() (string, bool) {
	if t.AssignedTo == nil {
		return "", false
	}
	return *t.AssignedTo, true
}
