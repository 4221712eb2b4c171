package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragstack/textchunk/chunker"
	logger "github.com/ragstack/textchunk/chunker/testing"
	"github.com/ragstack/textchunk/config"
	"github.com/ragstack/textchunk/documentloaders"
	"github.com/ragstack/textchunk/server"
)

func newTestServer(t *testing.T, loader documentloaders.Loader) *server.Server {
	t.Helper()

	log, _ := logger.NewTestLogger(t)
	registry, err := chunker.RegisterStrategies(log)
	require.NoError(t, err)

	return server.New(config.Default(), registry, loader, log)
}

func doJSON(t *testing.T, srv *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleChunk_Fixed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk", map[string]any{
		"text":       "abcdefgh",
		"strategy":   "fixed",
		"chunk_size": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.ChunkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "fixed", resp.Strategy)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Chunks, 3)
	assert.Equal(t, "abc", resp.Chunks[0].Text)
	assert.Equal(t, "def", resp.Chunks[1].Text)
	assert.Equal(t, "gh", resp.Chunks[2].Text)
	for i, chunk := range resp.Chunks {
		assert.Equal(t, i, chunk.Index)
		assert.NotEmpty(t, chunk.ID)
	}
}

func TestHandleChunk_EmptyTextIsValid(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk", map[string]any{
		"text":     "",
		"strategy": "paragraph",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.ChunkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Chunks)
}

func TestHandleChunk_BadRequests(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing strategy",
			body: map[string]any{"text": "abc"},
		},
		{
			name: "unknown strategy",
			body: map[string]any{"text": "abc", "strategy": "semantic"},
		},
		{
			name: "zero chunk size",
			body: map[string]any{"text": "abc", "strategy": "fixed", "chunk_size": 0},
		},
		{
			name: "overlap not smaller than chunk size",
			body: map[string]any{"text": "abc", "strategy": "sliding_window", "chunk_size": 4, "overlap": 4},
		},
		{
			name: "negative overlap",
			body: map[string]any{"text": "abc", "strategy": "hybrid", "chunk_size": 10, "overlap": -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleStrategies(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/strategies", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Strategies []string `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Strategies, "fixed")
	assert.Contains(t, resp.Strategies, "hybrid")
	assert.Contains(t, resp.Strategies, "sliding_window")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleChunkFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"),
		[]byte("Para one.\n\nPara two."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.txt"),
		[]byte("Only one paragraph here."), 0o644))

	log, _ := logger.NewTestLogger(t)
	loader := documentloaders.NewDir(dir, documentloaders.WithLogger(log))
	srv := newTestServer(t, loader)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk/files", map[string]any{
		"strategy": "paragraph",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.ChunkFilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.TotalFiles)
	assert.Equal(t, 3, resp.TotalChunks)
	assert.Zero(t, resp.Failed)
	require.Len(t, resp.Files, 2)
	assert.Equal(t, "one.txt", resp.Files[0].Source)
	assert.Equal(t, 2, resp.Files[0].Chunks)
}

func TestHandleChunkFiles_NoLoader(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk/files", map[string]any{
		"strategy": "fixed",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleChunkFiles_EmptyDirectory(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	loader := documentloaders.NewDir(t.TempDir(), documentloaders.WithLogger(log))
	srv := newTestServer(t, loader)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chunk/files", map[string]any{
		"strategy": "fixed",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
