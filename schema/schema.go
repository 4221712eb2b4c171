// Package schema defines the shared data types exchanged between the
// chunking engine, the document loaders, and the transport layer.
package schema

import "fmt"

// Document is an immutable input text to be chunked. Content may be
// empty; Source identifies where the text came from (file name, URL,
// request id) and is carried into every chunk produced from it.
type Document struct {
	Content  string
	Source   string
	Metadata map[string]any
}

func (d Document) String() string {
	return d.Content
}

// NewDocument creates a Document with a non-nil metadata map.
func NewDocument(content, source string, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{
		Content:  content,
		Source:   source,
		Metadata: metadata,
	}
}

// Chunk is a contiguous piece of a Document produced by one chunking
// strategy invocation. Index is the position in the output sequence;
// order matters for reconstruction and for downstream embedding.
type Chunk struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk %d (%s): %d chars", c.Index, c.Source, len(c.Text))
}
