package chunker

import "context"

// SlidingWindow produces fixed-length chunks whose start positions
// advance by chunkSize-overlap runes, so consecutive chunks share
// exactly overlap runes. The run stops once a window reaches the end
// of the text, with the final chunk truncated to the remaining tail.
type SlidingWindow struct {
	opts options
}

// NewSlidingWindow creates a sliding-window splitter.
func NewSlidingWindow(opts ...Option) *SlidingWindow {
	return &SlidingWindow{opts: applyOptions(opts)}
}

func (s *SlidingWindow) SplitText(_ context.Context, text string) ([]string, error) {
	if err := validateWindow(s.opts.chunkSize, s.opts.overlap); err != nil {
		return nil, err
	}
	return slideWindow([]rune(text), s.opts.chunkSize, s.opts.overlap), nil
}

// slideWindow is shared with the hybrid strategy, which windows each
// oversized paragraph independently. The stride size-overlap is
// strictly positive (enforced by validateWindow), so the start
// position strictly increases and the loop always terminates.
func slideWindow(runes []rune, size, overlap int) []string {
	if len(runes) == 0 {
		return []string{}
	}

	stride := size - overlap
	chunks := make([]string, 0, len(runes)/stride+1)
	for start := 0; ; start += stride {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			return chunks
		}
		chunks = append(chunks, string(runes[start:end]))
	}
}
