// Package biomed holds the document model and naming rules shared by the
// dataset and knowledge stores.
package biomed

// Document is an arbitrary JSON object as loaded from disk or synthesized
// by a placeholder generator. Any well-formed JSON object is accepted; no
// schema is enforced.
type Document map[string]any

const (
	// PlaceholderKey marks a document as synthetic stand-in data. Loaded
	// documents carry it only when the stored file itself set it.
	PlaceholderKey = "is_placeholder"

	// ErrorKey marks a degraded document produced when a backing file
	// exists but cannot be read or parsed.
	ErrorKey = "error"
)

// IsPlaceholder reports whether the document is marked as synthetic.
func (d Document) IsPlaceholder() bool {
	v, ok := d[PlaceholderKey].(bool)
	return ok && v
}

// IsError reports whether the document is a degraded error document.
func (d Document) IsError() bool {
	_, ok := d[ErrorKey]
	return ok
}

// ErrorDocument builds the degraded document surfaced by the dataset store
// when a backing file exists but cannot be loaded.
func ErrorDocument(err error) Document {
	return Document{ErrorKey: err.Error()}
}
