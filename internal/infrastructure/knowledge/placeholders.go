package knowledge

import (
	"fmt"

	"github.com/AaronRai123/REASON/internal/domain/biomed"
)

const maxLiteratureResults = 5

const literatureBaseYear = 2021

func diseasePlaceholder(name string) biomed.Document {
	return biomed.Document{
		"name":        name,
		"description": "A condition characterized by abnormal function or structure.",
		"categories":  []any{"example_category"},
		"icd10":       "X00.0",
		"symptoms": []any{
			map[string]any{"name": "Symptom 1", "prevalence": "common"},
			map[string]any{"name": "Symptom 2", "prevalence": "uncommon"},
			map[string]any{"name": "Symptom 3", "prevalence": "rare"},
		},
		"associated_genes": []any{
			map[string]any{"id": "GENE1", "name": "Gene 1", "evidence": "strong"},
			map[string]any{"id": "GENE2", "name": "Gene 2", "evidence": "moderate"},
			map[string]any{"id": "GENE3", "name": "Gene 3", "evidence": "weak"},
		},
		"prevalence":   "5 in 100,000",
		"risk_factors": []any{"Risk factor 1", "Risk factor 2"},
		"treatments": []any{
			map[string]any{"id": "TREATMENT1", "name": "Treatment 1", "type": "drug"},
			map[string]any{"id": "TREATMENT2", "name": "Treatment 2", "type": "procedure"},
		},
		biomed.PlaceholderKey: true,
	}
}

// pathwayPlaceholder builds the fixed four-gene network: a chain of
// activation, inhibition, and binding edges.
func pathwayPlaceholder(id string) biomed.Document {
	return biomed.Document{
		"id":          id,
		"name":        fmt.Sprintf("Pathway %s", id),
		"description": "Biological pathway involved in cellular function",
		"genes":       []any{"GENE1", "GENE2", "GENE3", "GENE4"},
		"interactions": []any{
			map[string]any{"source": "GENE1", "target": "GENE2", "type": "activation"},
			map[string]any{"source": "GENE2", "target": "GENE3", "type": "inhibition"},
			map[string]any{"source": "GENE3", "target": "GENE4", "type": "binding"},
		},
		biomed.PlaceholderKey: true,
	}
}

func drugPlaceholder(id string) biomed.Document {
	return biomed.Document{
		"id":                id,
		"name":              fmt.Sprintf("Drug %s", id),
		"description":       "Pharmaceutical compound used for treatment",
		"mechanism":         "Inhibits protein function",
		"targets":           []any{"TARGET1", "TARGET2"},
		"indications":       []any{"Disease 1", "Disease 2"},
		"contraindications": []any{"Condition 1", "Condition 2"},
		"side_effects":      []any{"Side effect 1", "Side effect 2"},
		biomed.PlaceholderKey: true,
	}
}

// publicationRecord builds the i-th (zero-based) synthetic publication for
// a query. Years cycle over a three-year window starting at the base year.
func publicationRecord(query string, i int) biomed.Document {
	seq := i + 1
	return biomed.Document{
		"id":       fmt.Sprintf("PUB%d", seq),
		"title":    fmt.Sprintf("Research on %s - Study %d", query, seq),
		"authors":  []any{"Author A", "Author B"},
		"journal":  "Journal of Medical Research",
		"year":     literatureBaseYear + i%3,
		"abstract": fmt.Sprintf("This study investigates %s and its effects on health.", query),
		"url":      fmt.Sprintf("https://example.com/publication%d", seq),
		biomed.PlaceholderKey: true,
	}
}

func validationRecord() biomed.Document {
	return biomed.Document{
		"known_genes":      []any{"GENE1", "GENE2"},
		"known_pathways":   []any{"PW1", "PW2"},
		"known_treatments": []any{"TREATMENT1"},
		biomed.PlaceholderKey: true,
	}
}
