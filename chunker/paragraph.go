package chunker

import (
	"context"
	"regexp"
	"strings"
)

// paragraphBreak matches one or more blank lines, including lines that
// carry only spaces or tabs.
var paragraphBreak = regexp.MustCompile(`\n\s*\n+`)

// Paragraph splits text on blank-line boundaries. Paragraphs are
// trimmed and empty ones discarded. A document without a single blank
// line comes back as one paragraph; a whitespace-only document yields
// an empty sequence.
type Paragraph struct{}

// NewParagraph creates a paragraph splitter.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

func (s *Paragraph) SplitText(_ context.Context, text string) ([]string, error) {
	return SplitParagraphs(text), nil
}

// SplitParagraphs is the paragraph boundary detector, shared with the
// hybrid strategy. Line endings are normalized before splitting.
func SplitParagraphs(text string) []string {
	parts := paragraphBreak.Split(normalizeNewlines(text), -1)
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
