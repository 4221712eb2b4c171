package documentloaders

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ragstack/textchunk/schema"
)

// maxFileSize guards against loading very large files whole; chunk
// output is materialized in memory, so input size bounds memory use.
const maxFileSize = 10 << 20 // 10 MB

// DirLoader loads text documents from a directory on the local file
// system. Plain text files are read as-is, Markdown is flattened to
// plain text, and PDF text is extracted page by page. Files that fail
// to load are logged and skipped so one bad file does not sink a
// whole batch.
type DirLoader struct {
	path   string
	logger *slog.Logger
}

// DirOption defines functional options for configuring DirLoader.
type DirOption func(*DirLoader)

// WithLogger sets a custom logger for the loader. If not provided,
// slog.Default() is used.
func WithLogger(logger *slog.Logger) DirOption {
	return func(l *DirLoader) {
		l.logger = logger
	}
}

// NewDir creates a loader for the given directory.
func NewDir(path string, opts ...DirOption) *DirLoader {
	loader := &DirLoader{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Load walks the directory and returns one document per supported
// file, in lexical walk order.
func (l *DirLoader) Load(ctx context.Context) ([]schema.Document, error) {
	var docs []schema.Document

	err := filepath.WalkDir(l.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != l.path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !supportedExtension(ext) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxFileSize {
			l.logger.Warn("skipping oversized file", "path", path, "size", info.Size())
			return nil
		}

		content, err := l.extract(path, ext)
		if err != nil {
			l.logger.Warn("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if strings.TrimSpace(content) == "" {
			l.logger.Debug("skipping empty file", "path", path)
			return nil
		}

		docs = append(docs, schema.NewDocument(content, d.Name(), map[string]any{
			"path":   path,
			"format": strings.TrimPrefix(ext, "."),
			"title":  deriveTitle(path),
		}))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading documents from %s: %w", l.path, err)
	}

	l.logger.Info("documents loaded", "path", l.path, "count", len(docs))
	return docs, nil
}

func supportedExtension(ext string) bool {
	switch ext {
	case ".txt", ".text", ".md", ".markdown", ".pdf":
		return true
	}
	return false
}

func (l *DirLoader) extract(path, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return extractPDFText(path)
	case ".md", ".markdown":
		source, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return flattenMarkdown(source)
	default:
		content, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
}

// leadingIndex matches numbered filenames such as "03_a_case_of_identity".
var leadingIndex = regexp.MustCompile(`^\d+[-_ ]?`)

// deriveTitle turns a filename into a human-readable title:
// "03_a_case_of_identity.txt" becomes "A Case Of Identity".
func deriveTitle(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = leadingIndex.ReplaceAllString(name, "")
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
