// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// leadInPhrases are polite or indirect openings removed from descriptions.
var leadInPhrases = []string{
	"we need someone to",
	"we need to",
	"we should",
	"can you",
	"could you",
	"please",
	"let's",
	"let us",
	"i want you to",
	"i want someone to",
}

// CleanDescription derives the task text from the sentence. It removes a
// leading "<name>,", "<name>:" or "<name>" for the assignee and then one
// leading lead-in phrase. Both removals happen at most once and only at the
// very front; the rest of the sentence keeps its original casing.
func CleanDescription(sentence, assignee string) string {
	desc := strings.TrimSpace(sentence)

	if assignee != "" {
		for _, prefix := range []string{assignee + ",", assignee + ":", assignee} {
			if strings.HasPrefix(desc, prefix) {
				desc = strings.TrimSpace(desc[len(prefix):])
				break
			}
		}
	}

	lower := foldCase(desc)
	for _, phrase := range leadInPhrases {
		if strings.HasPrefix(lower, phrase) {
			desc = strings.TrimSpace(desc[len(phrase):])
			break
		}
	}

	return desc
}
