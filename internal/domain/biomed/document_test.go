package biomed

import (
	"errors"
	"testing"
)

func TestDatasetKey(t *testing.T) {
	if got := DatasetKey("gene_expression", "parkinsons"); got != "gene_expression_parkinsons" {
		t.Fatalf("DatasetKey() = %q", got)
	}
	if got := DatasetKey("proteomics", ""); got != "proteomics" {
		t.Fatalf("DatasetKey() without name = %q", got)
	}

	// Colliding names under different categories must stay distinct.
	if DatasetKey("a", "x") == DatasetKey("b", "x") {
		t.Fatalf("DatasetKey() collided across categories")
	}
}

func TestEntityKeys(t *testing.T) {
	if got := DiseaseKey("Parkinson's Disease"); got != "disease_Parkinson's Disease" {
		t.Fatalf("DiseaseKey() = %q", got)
	}
	if got := PathwayKey("PW1"); got != "pathway_PW1" {
		t.Fatalf("PathwayKey() = %q", got)
	}
	if got := DrugKey("DB001"); got != "drug_DB001" {
		t.Fatalf("DrugKey() = %q", got)
	}
}

func TestDiseaseFileName(t *testing.T) {
	if got := DiseaseFileName("Parkinson's Disease"); got != "Parkinson's_Disease.json" {
		t.Fatalf("DiseaseFileName() = %q", got)
	}
	if got := DiseaseFileName("ALS"); got != "ALS.json" {
		t.Fatalf("DiseaseFileName() = %q", got)
	}
}

func TestDocumentMarkers(t *testing.T) {
	doc := Document{"type": "proteomics", PlaceholderKey: true}
	if !doc.IsPlaceholder() {
		t.Fatalf("IsPlaceholder() = false, want true")
	}

	loaded := Document{"type": "proteomics", PlaceholderKey: "yes"}
	if loaded.IsPlaceholder() {
		t.Fatalf("IsPlaceholder() non-bool marker treated as true")
	}

	errDoc := ErrorDocument(errors.New("unexpected end of JSON input"))
	if !errDoc.IsError() {
		t.Fatalf("IsError() = false, want true")
	}
	if errDoc[ErrorKey] != "unexpected end of JSON input" {
		t.Fatalf("ErrorDocument() message = %v", errDoc[ErrorKey])
	}
	if errDoc.IsPlaceholder() {
		t.Fatalf("error document must not carry the placeholder marker")
	}
}
