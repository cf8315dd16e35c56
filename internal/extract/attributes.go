// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// FindAssignedMember returns the name of the first member, in list order,
// whose name occurs anywhere in the sentence (case-insensitive, no word
// boundaries).
func FindAssignedMember(sentence string, members []types.TeamMember) (string, bool) {
	lower := strings.ToLower(sentence)
	for _, m := range members {
		if m.Name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(m.Name)) {
			return m.Name, true
		}
	}
	return "", false
}

// priorityTier maps trigger phrases to a priority.
type priorityTier struct {
	priority types.Priority
	phrases  []string
}

// priorityTiers are checked in order; the first tier with a match wins.
var priorityTiers = []priorityTier{
	{types.PriorityCritical, []string{"critical", "blocking users", "blocker"}},
	{types.PriorityHigh, []string{"high priority", "top priority", "urgent", "asap"}},
	{types.PriorityLow, []string{"low priority", "can wait", "nice to have"}},
}

// PriorityFromSentence ranks the sentence by keyword tier, defaulting to Medium.
func PriorityFromSentence(sentence string) types.Priority {
	lower := strings.ToLower(sentence)
	for _, tier := range priorityTiers {
		if containsAny(lower, tier.phrases) {
			return tier.priority
		}
	}
	return types.PriorityMedium
}

// deadlinePhrases are tried in order before the by/before patterns.
var deadlinePhrases = []string{
	"by tomorrow",
	"by today",
	"by tonight",
	"by friday",
	"by monday",
	"by tuesday",
	"by wednesday",
	"by thursday",
	"by saturday",
	"by sunday",
	"tomorrow",
	"today",
	"tonight",
	"this week",
	"next week",
	"this month",
	"next month",
	"end of this week",
	"end of the week",
	"before the release",
}

// deadlinePatterns capture the span in group 1. The leading group is a word
// boundary that treats any Unicode letter or digit as a word character.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|[^\pL\pN_])(by [a-zA-Z ]{3,30})`),
	regexp.MustCompile(`(?:^|[^\pL\pN_])(before [a-zA-Z ]{3,30})`),
}

// DeadlineFromSentence returns the deadline span in the sentence's original
// casing. Literal phrases take precedence over the "by ..." pattern, which
// takes precedence over "before ...".
func DeadlineFromSentence(sentence string) (string, bool) {
	start, end, ok := locateDeadline(foldCase(sentence))
	if !ok {
		return "", false
	}
	return strings.TrimSpace(sentence[start:end]), true
}

// locateDeadline finds the deadline span in a case-folded sentence.
func locateDeadline(lower string) (start, end int, ok bool) {
	for _, phrase := range deadlinePhrases {
		if i := strings.Index(lower, phrase); i >= 0 {
			return i, i + len(phrase), true
		}
	}
	for _, re := range deadlinePatterns {
		if loc := re.FindStringSubmatchIndex(lower); loc != nil {
			return loc[2], loc[3], true
		}
	}
	return 0, 0, false
}
