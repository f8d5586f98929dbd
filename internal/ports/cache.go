package ports

// DocumentCache defines the in-memory document cache used by the dataset
// and knowledge stores. Entries never expire; they leave only via Delete,
// Clear, or process teardown.
type DocumentCache interface {
	Get(key string) (value map[string]any, found bool)
	Set(key string, value map[string]any)
	Delete(key string)
	Clear()
	Len() int
}
