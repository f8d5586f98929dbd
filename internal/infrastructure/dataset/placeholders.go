package dataset

import "github.com/AaronRai123/REASON/internal/domain/biomed"

// generators maps recognized dataset categories to their placeholder
// builders. Unrecognized categories fall back to a generic shape.
var generators = map[string]func(name string) biomed.Document{
	"gene_expression": geneExpressionPlaceholder,
	"proteomics":      proteomicsPlaceholder,
	"pathways":        pathwaysPlaceholder,
}

func generatePlaceholder(dataType, name string) biomed.Document {
	if gen, ok := generators[dataType]; ok {
		return gen(name)
	}
	return genericPlaceholder(dataType, name)
}

func geneExpressionPlaceholder(name string) biomed.Document {
	return biomed.Document{
		"type":    "gene_expression",
		"disease": diseaseValue(name),
		"genes":   []any{"GENE1", "GENE2", "GENE3"},
		"values":  []any{1.2, -0.8, 2.5},
		biomed.PlaceholderKey: true,
	}
}

func proteomicsPlaceholder(name string) biomed.Document {
	return biomed.Document{
		"type":     "proteomics",
		"disease":  diseaseValue(name),
		"proteins": []any{"PROT1", "PROT2", "PROT3"},
		"values":   []any{0.9, 1.5, -1.1},
		biomed.PlaceholderKey: true,
	}
}

func pathwaysPlaceholder(name string) biomed.Document {
	return biomed.Document{
		"type":    "pathways",
		"disease": diseaseValue(name),
		"pathways": []any{
			map[string]any{"id": "PW1", "name": "Inflammatory Response", "genes": []any{"GENE1", "GENE2"}},
			map[string]any{"id": "PW2", "name": "Cell Cycle", "genes": []any{"GENE3", "GENE4"}},
			map[string]any{"id": "PW3", "name": "Apoptosis", "genes": []any{"GENE2", "GENE5"}},
		},
		biomed.PlaceholderKey: true,
	}
}

func genericPlaceholder(dataType, name string) biomed.Document {
	return biomed.Document{
		"type":    dataType,
		"disease": diseaseValue(name),
		"note":    "Placeholder data",
		biomed.PlaceholderKey: true,
	}
}

// diseaseValue keeps an absent dataset name as JSON null rather than "".
func diseaseValue(name string) any {
	if name == "" {
		return nil
	}
	return name
}
