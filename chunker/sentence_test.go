package chunker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragstack/textchunk/chunker"
)

func TestSentence_SplitText(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "two simple sentences",
			text:     "Hello world. This is Go.",
			expected: []string{"Hello world.", "This is Go."},
		},
		{
			name:     "question and exclamation",
			text:     "Is it done? It is! Good.",
			expected: []string{"Is it done?", "It is!", "Good."},
		},
		{
			name:     "abbreviation does not split",
			text:     "Mr. Smith went home. He slept.",
			expected: []string{"Mr. Smith went home.", "He slept."},
		},
		{
			name:     "single-letter initial does not split",
			text:     "J. Smith arrived. We left.",
			expected: []string{"J. Smith arrived.", "We left."},
		},
		{
			name:     "decimal number does not split",
			text:     "Pi is 3.14 exactly.",
			expected: []string{"Pi is 3.14 exactly."},
		},
		{
			name:     "lowercase continuation does not split",
			text:     "He left. she stayed behind.",
			expected: []string{"He left. she stayed behind."},
		},
		{
			name:     "closing quote stays with its sentence",
			text:     `He said "Stop." Then he left.`,
			expected: []string{`He said "Stop."`, "Then he left."},
		},
		{
			name:     "trailing text without punctuation becomes last sentence",
			text:     "It works. Then some trailing text",
			expected: []string{"It works.", "Then some trailing text"},
		},
		{
			name:     "no punctuation returns whole text",
			text:     "no punctuation in this text at all",
			expected: []string{"no punctuation in this text at all"},
		},
		{
			name:     "sentence starting with a digit",
			text:     "Count them. 42 were left.",
			expected: []string{"Count them.", "42 were left."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chunker.NewSentence().SplitText(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitSentences_EmptyInput(t *testing.T) {
	assert.Empty(t, chunker.SplitSentences(""))
	assert.Empty(t, chunker.SplitSentences("   \n\t  "))
}

func TestSplitSentences_NothingDropped(t *testing.T) {
	// Every non-whitespace character of the input must survive into
	// some sentence.
	text := "First sentence. Second one! And a tail without punctuation"
	sentences := chunker.SplitSentences(text)
	require.Len(t, sentences, 3)

	joined := ""
	for _, s := range sentences {
		joined += s + " "
	}
	for _, word := range []string{"First", "Second", "tail", "punctuation"} {
		assert.Contains(t, joined, word)
	}
}
