// Package dataset implements the file-backed dataset store: JSON documents
// under <root>/<dataType>/<name>.json with an in-memory cache and synthetic
// placeholder fallback for missing files.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/domain/biomed"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/ports"
)

type Store struct {
	dataDir string
	cache   ports.DocumentCache

	// Guards the check-then-insert sequence so a key is read from disk at
	// most once before its first cache population.
	mu sync.Mutex
}

var _ ports.DatasetStore = (*Store)(nil)

func NewStore(ctx context.Context, dataDir string, cache ports.DocumentCache) *Store {
	logging.Info(
		logging.WithAttrs(ctx, slog.String("component", "dataset.store")),
		"dataset store initialized",
		slog.String("data_dir", dataDir),
	)

	return &Store{
		dataDir: dataDir,
		cache:   cache,
	}
}

// Path derives the on-disk location for a dataset. With an empty name it
// returns the category directory. Pure: no I/O, same inputs same path.
func (s *Store) Path(dataType, name string) string {
	base := filepath.Join(s.dataDir, dataType)
	if name == "" {
		return base
	}
	return filepath.Join(base, name+".json")
}

// Load retrieves a dataset: cache first, then disk, then placeholder
// synthesis. A missing file is not an error; it triggers the placeholder.
// Read or parse failures come back as {error: message} documents, which are
// never cached.
func (s *Store) Load(ctx context.Context, dataType, name string, useCache bool) (biomed.Document, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if dataType == "" {
		return nil, errors.New("data type is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "dataset.store"))
	key := biomed.DatasetKey(dataType, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if useCache {
		if cached, found := s.cache.Get(key); found {
			logging.Debug(logCtx, "dataset cache hit", slog.String("cache_key", key))
			return cached, nil
		}
	}

	path := s.Path(dataType, name)

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var doc biomed.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			logging.Error(logCtx, "dataset parse failed",
				slog.String("path", path), slog.Any("err", errs.Loggable(err)))
			return biomed.ErrorDocument(err), nil
		}

		logging.Info(logCtx, "dataset loaded", slog.String("path", path))
		if useCache {
			s.cache.Set(key, doc)
		}
		return doc, nil

	case os.IsNotExist(err):
		logging.Warn(logCtx, "dataset file not found, generating placeholder",
			slog.String("path", path))

		doc := s.Placeholder(dataType, name)
		if useCache {
			s.cache.Set(key, doc)
		}
		return doc, nil

	default:
		logging.Error(logCtx, "dataset read failed",
			slog.String("path", path), slog.Any("err", errs.Loggable(err)))
		return biomed.ErrorDocument(err), nil
	}
}

// Placeholder synthesizes demonstration data for a dataset that has no
// backing file. Deterministic: no clock, no randomness.
func (s *Store) Placeholder(dataType, name string) biomed.Document {
	return generatePlaceholder(dataType, name)
}

// Save writes the document as indented JSON, creating the category
// directory as needed. Failures are logged and reduced to a false return.
func (s *Store) Save(ctx context.Context, doc biomed.Document, dataType, name string) bool {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "dataset.store"))
	if ctx == nil || dataType == "" || name == "" {
		logging.Error(logCtx, "dataset save rejected",
			slog.String("data_type", dataType), slog.String("name", name))
		return false
	}

	path := s.Path(dataType, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logging.Error(logCtx, "dataset directory create failed",
			slog.String("path", path), slog.Any("err", errs.Loggable(err)))
		return false
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logging.Error(logCtx, "dataset marshal failed",
			slog.String("path", path), slog.Any("err", errs.Loggable(err)))
		return false
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logging.Error(logCtx, "dataset write failed",
			slog.String("path", path), slog.Any("err", errs.Loggable(err)))
		return false
	}

	logging.Info(logCtx, "dataset saved", slog.String("path", path))
	return true
}

// Invalidate drops a single cache entry, forcing the next Load of that
// dataset to consult disk again. Used by the data-dir watcher.
func (s *Store) Invalidate(dataType, name string) {
	s.cache.Delete(biomed.DatasetKey(dataType, name))
}

func (s *Store) ClearCache() {
	s.cache.Clear()
}

// Shutdown releases store resources. Safe to call multiple times.
func (s *Store) Shutdown() {
	s.cache.Clear()
}
