package chunker

import "context"

// FixedSize slices text into consecutive, non-overlapping chunks of
// exactly chunkSize runes; the final chunk keeps whatever remains.
// Concatenating the output reconstructs the input exactly.
type FixedSize struct {
	opts options
}

// NewFixedSize creates a fixed-size splitter.
func NewFixedSize(opts ...Option) *FixedSize {
	return &FixedSize{opts: applyOptions(opts)}
}

// SplitText splits text into chunks of chunkSize runes. An empty text
// yields an empty sequence.
func (s *FixedSize) SplitText(_ context.Context, text string) ([]string, error) {
	size := s.opts.chunkSize
	if err := validateChunkSize(size); err != nil {
		return nil, err
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return []string{}, nil
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}
