package cache

import "testing"

func TestMemoryCacheSetGetDelete(t *testing.T) {
	c := NewMemoryCache()

	doc := map[string]any{"type": "gene_expression", "disease": "ALS"}
	c.Set("gene_expression_ALS", doc)

	got, found := c.Get("gene_expression_ALS")
	if !found {
		t.Fatalf("Get() expected found=true")
	}
	if got["disease"] != "ALS" {
		t.Fatalf("Get() disease = %v", got["disease"])
	}

	c.Delete("gene_expression_ALS")
	if _, found := c.Get("gene_expression_ALS"); found {
		t.Fatalf("Get() expected found=false after delete")
	}
}

func TestMemoryCacheGetReturnsSameObject(t *testing.T) {
	c := NewMemoryCache()

	doc := map[string]any{"note": "Placeholder data"}
	c.Set("k", doc)

	first, _ := c.Get("k")
	second, _ := c.Get("k")

	// Mutating through one reference must be visible through the other:
	// the cache hands back the stored object, not a copy.
	first["marker"] = true
	if second["marker"] != true {
		t.Fatalf("Get() returned a copy instead of the cached object")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache()
	c.Set("a", map[string]any{"v": 1})
	c.Set("b", map[string]any{"v": 2})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, found := c.Get("a"); found {
		t.Fatalf("Get() expected miss after Clear")
	}
}
