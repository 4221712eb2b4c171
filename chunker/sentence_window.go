package chunker

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SentenceWindow groups whole sentences into chunks bounded by both a
// rune budget (chunkSize) and a sentence count, with overlap expressed
// as the number of trailing sentences re-included in the next chunk.
// A single sentence longer than the budget is emitted on its own so
// the run always makes progress.
type SentenceWindow struct {
	opts options
}

// NewSentenceWindow creates a sentence-window splitter.
func NewSentenceWindow(opts ...Option) *SentenceWindow {
	return &SentenceWindow{opts: applyOptions(opts)}
}

func (s *SentenceWindow) SplitText(_ context.Context, text string) ([]string, error) {
	if err := validateChunkSize(s.opts.chunkSize); err != nil {
		return nil, err
	}
	if s.opts.maxSentences <= 0 {
		return nil, fmt.Errorf("%w: max sentences must be positive, got %d", ErrInvalidParameter, s.opts.maxSentences)
	}
	if s.opts.sentenceOverlap < 0 {
		return nil, fmt.Errorf("%w: sentence overlap cannot be negative, got %d", ErrInvalidParameter, s.opts.sentenceOverlap)
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return []string{}, nil
	}

	chunks := make([]string, 0, len(sentences)/2+1)
	i := 0
	for i < len(sentences) {
		chars := 0
		j := i
		for j < len(sentences) {
			add := utf8.RuneCountInString(sentences[j])
			if j > i {
				add++ // joining space
			}
			if j > i && (j-i >= s.opts.maxSentences || chars+add > s.opts.chunkSize) {
				break
			}
			chars += add
			j++
		}

		chunks = append(chunks, strings.Join(sentences[i:j], " "))

		next := j - s.opts.sentenceOverlap
		if next <= i {
			// Overlap would stall the walk; move past the group.
			next = j
		}
		i = next
	}
	return chunks, nil
}
