// Package documentloaders provides interfaces and implementations for
// loading documents from local sources into a format the chunking
// engine can consume.
package documentloaders

import (
	"context"

	"github.com/ragstack/textchunk/schema"
)

// Loader defines the interface for loading documents from a source.
// Implementations handle source-specific logic while returning a
// consistent document format for downstream chunking.
type Loader interface {
	// Load retrieves documents from the source. The context can be
	// used for cancellation during the loading process.
	Load(ctx context.Context) ([]schema.Document, error)
}
