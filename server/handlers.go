package server

import (
	"errors"
	"net/http"
	"runtime"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ragstack/textchunk/chunker"
	"github.com/ragstack/textchunk/schema"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": s.registry.Names()})
}

func (s *Server) handleChunk(c *gin.Context) {
	var req ChunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	splitter, err := s.registry.Splitter(chunker.Strategy(req.Strategy), chunker.Params{
		ChunkSize: req.ChunkSize,
		Overlap:   req.Overlap,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := schema.NewDocument(req.Text, "request", nil)
	chunks, err := chunker.SplitDocument(c.Request.Context(), splitter, doc)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chunker.ErrInvalidParameter) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("chunked request payload",
		"strategy", req.Strategy, "input_chars", len(req.Text), "chunks", len(chunks))

	c.JSON(http.StatusOK, ChunkResponse{
		Strategy: req.Strategy,
		Count:    len(chunks),
		Chunks:   chunks,
	})
}

func (s *Server) handleChunkFiles(c *gin.Context) {
	if s.loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no document source configured"})
		return
	}

	var req ChunkFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	splitter, err := s.registry.Splitter(chunker.Strategy(req.Strategy), chunker.Params{
		ChunkSize: req.ChunkSize,
		Overlap:   req.Overlap,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docs, err := s.loader.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no documents found"})
		return
	}

	results := s.chunkConcurrently(c, splitter, docs)

	resp := ChunkFilesResponse{
		Strategy: req.Strategy,
		Files:    results,
	}
	for _, r := range results {
		resp.TotalFiles++
		resp.TotalChunks += r.Chunks
		if r.Error != "" {
			resp.Failed++
		}
	}

	s.logger.Info("chunked data directory",
		"strategy", req.Strategy, "files", resp.TotalFiles,
		"chunks", resp.TotalChunks, "failed", resp.Failed)

	status := http.StatusOK
	if resp.Failed > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}

// chunkConcurrently fans the documents out over a bounded worker pool.
// Splitters are pure, so a single splitter is shared by all workers;
// results keep the document order of the loader.
func (s *Server) chunkConcurrently(c *gin.Context, splitter chunker.Splitter, docs []schema.Document) []FileResult {
	results := make([]FileResult, len(docs))

	workers := runtime.NumCPU() * 2
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				doc := docs[i]
				chunks, err := chunker.SplitDocument(c.Request.Context(), splitter, doc)
				if err != nil {
					results[i] = FileResult{Source: doc.Source, Error: err.Error()}
					continue
				}
				results[i] = FileResult{Source: doc.Source, Chunks: len(chunks)}
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
