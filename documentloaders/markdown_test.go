package documentloaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenMarkdown(t *testing.T) {
	source := []byte(`# Title

First paragraph with **bold** and [a link](https://example.com).

- item one
- item two

> quoted line
`)

	got, err := flattenMarkdown(source)
	require.NoError(t, err)

	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "First paragraph with bold and a link.")
	assert.Contains(t, got, "item one")
	assert.Contains(t, got, "quoted line")
	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "https://example.com")

	// Headings and paragraphs stay separated by blank lines so the
	// paragraph splitter still finds boundaries.
	assert.Contains(t, got, "Title\n\n")
}

func TestFlattenMarkdown_CodeBlockContentKept(t *testing.T) {
	source := []byte("Intro.\n\n```go\nfunc main() {}\n```\n")

	got, err := flattenMarkdown(source)
	require.NoError(t, err)
	assert.Contains(t, got, "func main() {}")
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"03_a_case_of_identity.txt", "A Case Of Identity"},
		{"data/12-the-final-problem.md", "The Final Problem"},
		{"plain.txt", "Plain"},
		{"notes.pdf", "Notes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, deriveTitle(tt.path), tt.path)
	}
}
