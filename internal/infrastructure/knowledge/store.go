// Package knowledge implements the knowledge store: entity-specific lookups
// for diseases, pathways, drugs, literature, and validation data, with the
// same cache/fallback contract as the dataset store.
//
// Failure policy differs from the dataset store on purpose: disease disk
// reads that fail are logged and silently replaced by placeholder data, so
// callers cannot tell a corrupted file from an absent one.
package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/domain/biomed"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/ports"
)

// entityDirs are created eagerly at construction.
var entityDirs = []string{"diseases", "pathways", "drugs", "targets", "publications"}

type Store struct {
	dataDir string
	cache   ports.DocumentCache

	// Simulated lookup cost applied before disease placeholder generation.
	// Zero disables it; the generator itself stays pure.
	lookupDelay time.Duration

	mu sync.Mutex
}

var _ ports.KnowledgeStore = (*Store)(nil)

func NewStore(ctx context.Context, dataDir string, cache ports.DocumentCache, lookupDelay time.Duration) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "knowledge.store"))

	for _, dir := range entityDirs {
		if err := os.MkdirAll(filepath.Join(dataDir, dir), 0o755); err != nil {
			return nil, errs.Wrapf(err, "create knowledge directory %q", dir)
		}
	}

	logging.Info(logCtx, "knowledge store initialized", slog.String("data_dir", dataDir))

	return &Store{
		dataDir:     dataDir,
		cache:       cache,
		lookupDelay: lookupDelay,
	}, nil
}

// Disease returns information about a disease. A stored file under
// diseases/ wins; read or parse failures and missing files both degrade to
// the placeholder record.
func (s *Store) Disease(ctx context.Context, name string) (biomed.Document, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if name == "" {
		return nil, errors.New("disease name is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "knowledge.store"))
	key := biomed.DiseaseKey(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	path := filepath.Join(s.dataDir, "diseases", biomed.DiseaseFileName(name))

	raw, err := os.ReadFile(path)
	if err == nil {
		var doc biomed.Document
		if jsonErr := json.Unmarshal(raw, &doc); jsonErr == nil {
			s.cache.Set(key, doc)
			return doc, nil
		} else {
			logging.Error(logCtx, "disease file corrupt, substituting placeholder",
				slog.String("path", path), slog.Any("err", errs.Loggable(jsonErr)))
		}
	} else if !os.IsNotExist(err) {
		logging.Error(logCtx, "disease file unreadable, substituting placeholder",
			slog.String("path", path), slog.Any("err", errs.Loggable(err)))
	}

	logging.Info(logCtx, "creating placeholder data for disease", slog.String("disease", name))

	if s.lookupDelay > 0 {
		select {
		case <-time.After(s.lookupDelay):
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), "disease lookup interrupted")
		}
	}

	doc := diseasePlaceholder(name)
	s.cache.Set(key, doc)
	return doc, nil
}

// Pathway never consults disk: pathway records are always synthesized,
// then cached.
func (s *Store) Pathway(ctx context.Context, id string) (biomed.Document, error) {
	return s.synthesized(ctx, biomed.PathwayKey(id), id, "pathway id", pathwayPlaceholder)
}

// Drug never consults disk: drug records are always synthesized, then cached.
func (s *Store) Drug(ctx context.Context, id string) (biomed.Document, error) {
	return s.synthesized(ctx, biomed.DrugKey(id), id, "drug id", drugPlaceholder)
}

func (s *Store) synthesized(ctx context.Context, key, id, idLabel string, gen func(string) biomed.Document) (biomed.Document, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if id == "" {
		return nil, errors.New(idLabel + " is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	doc := gen(id)
	s.cache.Set(key, doc)
	return doc, nil
}

// SearchLiterature produces up to five synthetic publication records for a
// query. Stateless: results are never cached, by contract.
func (s *Store) SearchLiterature(ctx context.Context, query string, maxResults int) ([]biomed.Document, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if query == "" {
		return nil, errors.New("query is required")
	}

	n := maxResults
	if n > maxLiteratureResults {
		n = maxLiteratureResults
	}
	if n < 0 {
		n = 0
	}

	publications := make([]biomed.Document, 0, n)
	for i := 0; i < n; i++ {
		publications = append(publications, publicationRecord(query, i))
	}
	return publications, nil
}

// ValidationData returns the fixed validation record. The disease argument
// is deliberately unused: the record is constant regardless of input, a
// known limitation preserved from the reference behavior.
func (s *Store) ValidationData(ctx context.Context, disease string) biomed.Document {
	_ = disease

	logging.Debug(
		logging.WithAttrs(ctx, slog.String("component", "knowledge.store")),
		"returning validation data", slog.String("disease", disease),
	)
	return validationRecord()
}

func (s *Store) ClearCache() {
	s.cache.Clear()
}

// Shutdown releases store resources. Safe to call multiple times.
func (s *Store) Shutdown() {
	s.cache.Clear()
}
