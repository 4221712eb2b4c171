// Package chunker implements the boundary-selection strategies that
// turn a raw document into an ordered sequence of text chunks suitable
// for embedding and retrieval.
//
// All splitters are pure: they hold no state across calls, never touch
// shared memory, and may be used concurrently. Sizes and overlaps are
// counted in runes so multi-byte text is never cut mid-character.
package chunker

import (
	"context"

	"github.com/google/uuid"

	"github.com/ragstack/textchunk/schema"
)

// Splitter turns a text into an ordered sequence of chunk strings.
type Splitter interface {
	SplitText(ctx context.Context, text string) ([]string, error)
}

// SplitDocument runs a splitter over a document and materializes the
// result as schema.Chunks with fresh ids and sequential indices. Each
// call returns an independently owned slice.
func SplitDocument(ctx context.Context, s Splitter, doc schema.Document) ([]schema.Chunk, error) {
	parts, err := s.SplitText(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	chunks := make([]schema.Chunk, len(parts))
	for i, text := range parts {
		chunks[i] = schema.Chunk{
			ID:     uuid.NewString(),
			Index:  i,
			Text:   text,
			Source: doc.Source,
		}
	}
	return chunks, nil
}
