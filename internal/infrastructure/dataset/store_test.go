package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AaronRai123/REASON/internal/domain/biomed"
	"github.com/AaronRai123/REASON/internal/infrastructure/cache"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), t.TempDir(), cache.NewMemoryCache())
}

func TestPathIsDeterministic(t *testing.T) {
	s := setupStore(t)

	first := s.Path("gene_expression", "parkinsons")
	second := s.Path("gene_expression", "parkinsons")
	if first != second {
		t.Fatalf("Path() not deterministic: %q vs %q", first, second)
	}

	want := filepath.Join(s.dataDir, "gene_expression", "parkinsons.json")
	if first != want {
		t.Fatalf("Path() = %q, want %q", first, want)
	}

	if got := s.Path("proteomics", ""); got != filepath.Join(s.dataDir, "proteomics") {
		t.Fatalf("Path() without name = %q", got)
	}
}

func TestLoadMissingFileReturnsPlaceholder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	doc, err := s.Load(ctx, "gene_expression", "parkinsons", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !doc.IsPlaceholder() {
		t.Fatalf("Load() missing file did not return placeholder: %v", doc)
	}

	genes, ok := doc["genes"].([]any)
	if !ok || len(genes) != 3 {
		t.Fatalf("Load() placeholder genes = %v", doc["genes"])
	}
	values, ok := doc["values"].([]any)
	if !ok || len(values) != 3 {
		t.Fatalf("Load() placeholder values = %v", doc["values"])
	}

	// Second cached call returns the identical object without touching disk.
	again, err := s.Load(ctx, "gene_expression", "parkinsons", true)
	if err != nil {
		t.Fatalf("Load() second call error = %v", err)
	}
	if reflect.ValueOf(again).Pointer() != reflect.ValueOf(doc).Pointer() {
		t.Fatalf("Load() cached call returned a different object")
	}
}

func TestLoadReadsFromDisk(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	dir := filepath.Join(s.dataDir, "proteomics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	content := []byte(`{"proteins": ["P53"], "source": "measured"}`)
	if err := os.WriteFile(filepath.Join(dir, "als.json"), content, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	doc, err := s.Load(ctx, "proteomics", "als", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc["source"] != "measured" {
		t.Fatalf("Load() source = %v", doc["source"])
	}
	if doc.IsPlaceholder() {
		t.Fatalf("Load() stored document wrongly marked as placeholder")
	}
}

func TestLoadMalformedJSONReturnsErrorDocument(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	dir := filepath.Join(s.dataDir, "pathways")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	doc, err := s.Load(ctx, "pathways", "bad", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !doc.IsError() {
		t.Fatalf("Load() malformed file did not return error document: %v", doc)
	}

	// Error documents are not cached: fixing the file makes the next load succeed.
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"fixed": true}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	doc, err = s.Load(ctx, "pathways", "bad", true)
	if err != nil {
		t.Fatalf("Load() after fix error = %v", err)
	}
	if doc["fixed"] != true {
		t.Fatalf("Load() after fix = %v, error document was cached", doc)
	}
}

func TestLoadWithoutCache(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if _, err := s.Load(ctx, "metabolomics", "x", false); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, found := s.cache.Get(biomed.DatasetKey("metabolomics", "x")); found {
		t.Fatalf("Load(useCache=false) populated cache: %v", got)
	}
}

func TestLoadRejectsBadArguments(t *testing.T) {
	s := setupStore(t)

	if _, err := s.Load(nil, "gene_expression", "x", true); err == nil {
		t.Fatalf("Load() expected error for nil context")
	}
	if _, err := s.Load(context.Background(), "", "x", true); err == nil {
		t.Fatalf("Load() expected error for empty data type")
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	s := setupStore(t)

	first := s.Placeholder("gene_expression", "X")
	second := s.Placeholder("gene_expression", "X")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Placeholder() not deterministic:\n%v\n%v", first, second)
	}

	generic := s.Placeholder("imaging", "X")
	if generic["note"] != "Placeholder data" || !generic.IsPlaceholder() {
		t.Fatalf("Placeholder() generic shape = %v", generic)
	}
	if generic["type"] != "imaging" || generic["disease"] != "X" {
		t.Fatalf("Placeholder() generic identity = %v", generic)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	doc := biomed.Document{
		"type":    "gene_expression",
		"disease": "huntingtons",
		"genes":   []any{"HTT"},
		"values":  []any{3.1},
	}

	if ok := s.Save(ctx, doc, "gene_expression", "huntingtons"); !ok {
		t.Fatalf("Save() = false, want true")
	}

	loaded, err := s.Load(ctx, "gene_expression", "huntingtons", false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Fatalf("round trip mismatch:\nsaved  %v\nloaded %v", doc, loaded)
	}
}

func TestSaveFailureReturnsFalse(t *testing.T) {
	s := setupStore(t)

	if ok := s.Save(context.Background(), biomed.Document{}, "", "x"); ok {
		t.Fatalf("Save() with empty data type = true, want false")
	}
	if ok := s.Save(nil, biomed.Document{}, "t", "x"); ok {
		t.Fatalf("Save() with nil context = true, want false")
	}
}

func TestClearCacheForcesReload(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	doc := biomed.Document{"version": "one"}
	if ok := s.Save(ctx, doc, "pathways", "ref"); !ok {
		t.Fatalf("Save() = false")
	}
	if _, err := s.Load(ctx, "pathways", "ref", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	updated := biomed.Document{"version": "two"}
	if ok := s.Save(ctx, updated, "pathways", "ref"); !ok {
		t.Fatalf("Save() update = false")
	}

	// Still the stale cached copy.
	stale, err := s.Load(ctx, "pathways", "ref", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stale["version"] != "one" {
		t.Fatalf("Load() before clear = %v, expected cached copy", stale)
	}

	s.ClearCache()

	fresh, err := s.Load(ctx, "pathways", "ref", true)
	if err != nil {
		t.Fatalf("Load() after clear error = %v", err)
	}
	if fresh["version"] != "two" {
		t.Fatalf("Load() after clear = %v, want re-read from disk", fresh)
	}
}

func TestInvalidateSingleKey(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if _, err := s.Load(ctx, "gene_expression", "a", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := s.Load(ctx, "gene_expression", "b", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s.Invalidate("gene_expression", "a")

	if _, found := s.cache.Get(biomed.DatasetKey("gene_expression", "a")); found {
		t.Fatalf("Invalidate() left the entry in cache")
	}
	if _, found := s.cache.Get(biomed.DatasetKey("gene_expression", "b")); !found {
		t.Fatalf("Invalidate() dropped an unrelated entry")
	}
}

func TestShutdownIdempotent(t *testing.T) {
	s := setupStore(t)

	if _, err := s.Load(context.Background(), "proteomics", "x", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s.Shutdown()
	s.Shutdown()

	if s.cache.Len() != 0 {
		t.Fatalf("Shutdown() left %d cache entries", s.cache.Len())
	}
}
