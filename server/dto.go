package server

import "github.com/ragstack/textchunk/schema"

// ChunkRequest chunks a single text payload. Text may be empty: a
// degenerate document is valid input and yields an empty sequence.
// ChunkSize and Overlap are optional; nil falls back to the strategy
// defaults, while an explicit zero is passed through to the engine.
type ChunkRequest struct {
	Text      string `json:"text"`
	Strategy  string `json:"strategy" binding:"required"`
	ChunkSize *int   `json:"chunk_size"`
	Overlap   *int   `json:"overlap"`
}

// ChunkResponse carries the ordered chunk sequence for one document.
type ChunkResponse struct {
	Strategy string         `json:"strategy"`
	Count    int            `json:"count"`
	Chunks   []schema.Chunk `json:"chunks"`
}

// ChunkFilesRequest chunks every document in the configured data
// directory with one strategy.
type ChunkFilesRequest struct {
	Strategy  string `json:"strategy" binding:"required"`
	ChunkSize *int   `json:"chunk_size"`
	Overlap   *int   `json:"overlap"`
}

// FileResult reports the outcome for a single loaded document.
type FileResult struct {
	Source string `json:"source"`
	Chunks int    `json:"chunks"`
	Error  string `json:"error,omitempty"`
}

// ChunkFilesResponse summarizes a batch run over the data directory.
type ChunkFilesResponse struct {
	Strategy    string       `json:"strategy"`
	TotalFiles  int          `json:"total_files"`
	TotalChunks int          `json:"total_chunks"`
	Failed      int          `json:"failed"`
	Files       []FileResult `json:"files"`
}
