package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AaronRai123/REASON/internal/infrastructure/cache"
	"github.com/AaronRai123/REASON/internal/infrastructure/dataset"
	"github.com/AaronRai123/REASON/internal/infrastructure/knowledge"
)

func setupServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	ctx := context.Background()

	dataDir := t.TempDir()
	datasets := dataset.NewStore(ctx, dataDir, cache.NewMemoryCache())
	kb, err := knowledge.NewStore(ctx, dataDir, cache.NewMemoryCache(), 0)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	srv := httptest.NewServer(NewHandler(datasets, kb, true).Router())
	t.Cleanup(srv.Close)
	return srv, dataDir
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("GET %s decode error = %v", url, err)
	}
	return body
}

func TestGetDiseasePlaceholder(t *testing.T) {
	srv, _ := setupServer(t)

	body := getJSON(t, srv.URL+"/v1/diseases/ALS", http.StatusOK)
	if body["name"] != "ALS" {
		t.Fatalf("disease name = %v", body["name"])
	}
	if body["is_placeholder"] != true {
		t.Fatalf("disease placeholder marker = %v", body["is_placeholder"])
	}
}

func TestGetPathwayAndDrug(t *testing.T) {
	srv, _ := setupServer(t)

	pathway := getJSON(t, srv.URL+"/v1/pathways/PW1", http.StatusOK)
	if pathway["name"] != "Pathway PW1" {
		t.Fatalf("pathway name = %v", pathway["name"])
	}

	drug := getJSON(t, srv.URL+"/v1/drugs/DB001", http.StatusOK)
	if drug["name"] != "Drug DB001" {
		t.Fatalf("drug name = %v", drug["name"])
	}
}

func TestSearchLiterature(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Get(srv.URL + "/v1/literature?q=cancer&max=100")
	if err != nil {
		t.Fatalf("GET literature error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET literature status = %d", resp.StatusCode)
	}

	var pubs []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&pubs); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(pubs) != 5 {
		t.Fatalf("literature returned %d records, want 5", len(pubs))
	}
	if pubs[0]["id"] != "PUB1" {
		t.Fatalf("first publication id = %v", pubs[0]["id"])
	}
}

func TestSearchLiteratureRequiresQuery(t *testing.T) {
	srv, _ := setupServer(t)

	body := getJSON(t, srv.URL+"/v1/literature", http.StatusBadRequest)
	if body["error"] == "" {
		t.Fatalf("expected error body, got %v", body)
	}
}

func TestGetValidationData(t *testing.T) {
	srv, _ := setupServer(t)

	first := getJSON(t, srv.URL+"/v1/validation/anything", http.StatusOK)
	second := getJSON(t, srv.URL+"/v1/validation/other", http.StatusOK)

	firstGenes, _ := json.Marshal(first["known_genes"])
	secondGenes, _ := json.Marshal(second["known_genes"])
	if string(firstGenes) != string(secondGenes) {
		t.Fatalf("validation data depends on its argument")
	}
}

func TestGetDatasetStoredAndDegraded(t *testing.T) {
	srv, dataDir := setupServer(t)

	dir := filepath.Join(dataDir, "proteomics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "als.json"), []byte(`{"source": "measured"}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	stored := getJSON(t, srv.URL+"/v1/datasets/proteomics/als", http.StatusOK)
	if stored["source"] != "measured" {
		t.Fatalf("dataset source = %v", stored["source"])
	}

	placeholder := getJSON(t, srv.URL+"/v1/datasets/gene_expression/als", http.StatusOK)
	if placeholder["is_placeholder"] != true {
		t.Fatalf("missing dataset did not return placeholder: %v", placeholder)
	}

	degraded := getJSON(t, srv.URL+"/v1/datasets/proteomics/bad", http.StatusBadGateway)
	if _, ok := degraded["error"]; !ok {
		t.Fatalf("degraded dataset body = %v", degraded)
	}
}
