package chunker

// options holds the knobs shared by the splitters. Values are not
// filtered here; each splitter validates before processing so bad
// parameters surface as ErrInvalidParameter instead of being silently
// replaced by defaults.
type options struct {
	chunkSize       int
	overlap         int
	maxSentences    int
	sentenceOverlap int
}

// Option is a function type for configuring a splitter.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		chunkSize:       DefaultChunkSize,
		overlap:         DefaultOverlap,
		maxSentences:    DefaultMaxSentences,
		sentenceOverlap: DefaultSentenceOverlap,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithChunkSize sets the target chunk size in runes.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithOverlap sets how many runes consecutive windowed chunks share.
func WithOverlap(overlap int) Option {
	return func(o *options) {
		o.overlap = overlap
	}
}

// WithMaxSentences caps the sentence count of a sentence-window chunk.
func WithMaxSentences(n int) Option {
	return func(o *options) {
		o.maxSentences = n
	}
}

// WithSentenceOverlap sets how many trailing sentences a
// sentence-window chunk re-includes from its predecessor.
func WithSentenceOverlap(n int) Option {
	return func(o *options) {
		o.sentenceOverlap = n
	}
}
