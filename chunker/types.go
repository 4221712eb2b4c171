package chunker

import "errors"

// Strategy identifies a chunking algorithm in the registry.
type Strategy string

const (
	StrategyFixed          Strategy = "fixed"
	StrategyParagraph      Strategy = "paragraph"
	StrategySentence       Strategy = "sentence"
	StrategySlidingWindow  Strategy = "sliding_window"
	StrategyHybrid         Strategy = "hybrid"
	StrategySentenceWindow Strategy = "sentence_window"
)

// Defaults applied when an option is left unset.
const (
	DefaultChunkSize       = 1000
	DefaultOverlap         = 200
	DefaultMaxSentences    = 10
	DefaultSentenceOverlap = 1
)

var (
	// ErrInvalidParameter reports a chunk size or overlap that cannot
	// produce a valid, terminating chunking run. It is returned before
	// any chunk is produced.
	ErrInvalidParameter = errors.New("invalid chunking parameter")

	// ErrUnknownStrategy reports a strategy name outside the registry.
	ErrUnknownStrategy = errors.New("unknown chunking strategy")
)
