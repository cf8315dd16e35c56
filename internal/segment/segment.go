// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits transcripts into sentences using the punkt
// tokenizer, falling back to one sentence per line when no tokenizer is
// available.
package segment

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// tokenizer is the subset of the punkt tokenizer the Segmenter uses.
type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Segmenter splits text into trimmed, non-empty sentences. It is safe for
// concurrent use.
type Segmenter struct {
	mu        sync.Mutex // guards tokenizer
	tokenizer tokenizer
}

// New builds a Segmenter backed by the English punkt model. If the model
// cannot be loaded the Segmenter splits on newlines instead.
func New(logger *slog.Logger) *Segmenter {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		if logger != nil {
			logger.Warn("punkt tokenizer unavailable, splitting on newlines", slog.Any("err", err))
		}
		return &Segmenter{}
	}
	return &Segmenter{tokenizer: tok}
}

// NewLineSegmenter returns a Segmenter that treats each line as a sentence.
func NewLineSegmenter() *Segmenter {
	return &Segmenter{}
}

// Split returns the sentences of text in order. Empty or whitespace-only
// input yields an empty slice.
func (s *Segmenter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	var raw []string
	if s.tokenizer != nil {
		s.mu.Lock()
		for _, sent := range s.tokenizer.Tokenize(text) {
			raw = append(raw, sent.Text)
		}
		s.mu.Unlock()
	} else {
		raw = strings.Split(text, "\n")
	}

	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

var (
	defaultOnce      sync.Once
	defaultSegmenter *Segmenter
)

// Split segments text with a lazily built default Segmenter.
func Split(text string) []string {
	defaultOnce.Do(func() {
		defaultSegmenter = New(slog.Default())
	})
	return defaultSegmenter.Split(text)
}
