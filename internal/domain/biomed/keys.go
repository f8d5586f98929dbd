package biomed

import "strings"

// DatasetKey builds the composite cache key for a dataset lookup.
// The name is optional; without it the key is the bare data type, so two
// categories with colliding names still address distinct cache entries.
func DatasetKey(dataType, name string) string {
	if name == "" {
		return dataType
	}
	return dataType + "_" + name
}

// DiseaseKey builds the cache key for a disease lookup.
func DiseaseKey(name string) string { return "disease_" + name }

// PathwayKey builds the cache key for a pathway lookup.
func PathwayKey(id string) string { return "pathway_" + id }

// DrugKey builds the cache key for a drug lookup.
func DrugKey(id string) string { return "drug_" + id }

// DiseaseFileName maps a disease name to its on-disk file name, replacing
// spaces with underscores.
func DiseaseFileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".json"
}
