package ports

import (
	"context"

	"github.com/AaronRai123/REASON/internal/domain/biomed"
)

// DatasetStore retrieves and persists typed datasets under a two-level
// namespace (data type, optional dataset name) with transparent caching and
// placeholder fallback.
//
// Load surfaces I/O and parse failures as degraded {error: message}
// documents, never as Go errors; the returned error covers contract misuse
// (nil context, empty data type) only.
type DatasetStore interface {
	Path(dataType, name string) string
	Load(ctx context.Context, dataType, name string, useCache bool) (biomed.Document, error)
	Placeholder(dataType, name string) biomed.Document
	Save(ctx context.Context, doc biomed.Document, dataType, name string) bool
	Invalidate(dataType, name string)
	ClearCache()
	Shutdown()
}

// KnowledgeStore provides entity-specific lookups with the same
// cache/fallback contract as DatasetStore. Disease lookups consult disk and
// silently substitute placeholders on read failure; the other entity kinds
// are always synthesized.
type KnowledgeStore interface {
	Disease(ctx context.Context, name string) (biomed.Document, error)
	Pathway(ctx context.Context, id string) (biomed.Document, error)
	Drug(ctx context.Context, id string) (biomed.Document, error)
	SearchLiterature(ctx context.Context, query string, maxResults int) ([]biomed.Document, error)
	ValidationData(ctx context.Context, disease string) biomed.Document
	ClearCache()
	Shutdown()
}
