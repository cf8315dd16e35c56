// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"
)

// taskMarkers are obligation or request phrases. Any occurrence marks the
// sentence as a task.
var taskMarkers = []string{
	"need to",
	"should",
	"must",
	"have to",
	"let's",
	"we need someone to",
	"we need to",
	"can you",
	"could you",
	"please",
}

// taskVerbs are imperative verbs that open a task sentence.
var taskVerbs = []string{
	"fix",
	"update",
	"design",
	"optimize",
	"write",
	"implement",
	"deploy",
	"review",
	"create",
	"test",
	"add",
	"improve",
	"refactor",
}

// IsTaskSentence reports whether the sentence describes an action item.
// Rules are tried in order: a marker phrase anywhere, a task verb opening the
// sentence, or "someone" together with a task verb anywhere.
func IsTaskSentence(sentence string) bool {
	lower := strings.TrimSpace(strings.ToLower(sentence))
	if lower == "" {
		return false
	}

	if containsAny(lower, taskMarkers) {
		return true
	}

	for _, verb := range taskVerbs {
		if strings.HasPrefix(lower, verb+" ") {
			return true
		}
	}

	return strings.Contains(lower, "someone") && containsAny(lower, taskVerbs)
}

// containsAny reports whether s contains any of the phrases.
func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// foldCase returns a lower-cased copy of s whose byte offsets line up with s.
// Runes whose lower-case form has a different UTF-8 length are kept as is, so
// an index found in the copy can always slice the original.
func foldCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		lr := []rune(strings.ToLower(string(r)))
		if r != utf8.RuneError && len(lr) == 1 && utf8.RuneLen(lr[0]) == size {
			b.WriteRune(lr[0])
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
