package chunker

import (
	"context"
	"unicode/utf8"
)

// paragraphJoiner rejoins merged paragraphs; its two runes count
// against the chunk size budget.
const paragraphJoiner = "\n\n"

// Hybrid keeps paragraphs as the primary chunk boundary while still
// guaranteeing windowed overlap inside long passages. Adjacent short
// paragraphs are merged in document order while the merged text stays
// within the chunk size; a paragraph longer than the chunk size is
// windowed on its own with the sliding-window algorithm, so overlap
// never crosses a paragraph boundary.
type Hybrid struct {
	opts options
}

// NewHybrid creates a hybrid paragraph/window splitter.
func NewHybrid(opts ...Option) *Hybrid {
	return &Hybrid{opts: applyOptions(opts)}
}

func (s *Hybrid) SplitText(_ context.Context, text string) ([]string, error) {
	size, overlap := s.opts.chunkSize, s.opts.overlap
	if err := validateWindow(size, overlap); err != nil {
		return nil, err
	}

	chunks := []string{}
	pending := ""
	flush := func() {
		if pending != "" {
			chunks = append(chunks, pending)
			pending = ""
		}
	}

	for _, para := range SplitParagraphs(text) {
		runes := []rune(para)
		if len(runes) > size {
			// An oversized paragraph gets its own windows; merging it
			// with neighbours would push overlap across the boundary.
			flush()
			chunks = append(chunks, slideWindow(runes, size, overlap)...)
			continue
		}

		switch {
		case pending == "":
			pending = para
		case utf8.RuneCountInString(pending)+utf8.RuneCountInString(paragraphJoiner)+len(runes) <= size:
			pending += paragraphJoiner + para
		default:
			flush()
			pending = para
		}
	}
	flush()
	return chunks, nil
}
