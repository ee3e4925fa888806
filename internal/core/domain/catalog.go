package domain

import (
	"slices"
	"strings"
)

// CatalogKey identifies the bindings of one content type in one usage context.
type CatalogKey struct {
	ContentType string
	Context     string
}

func (k CatalogKey) String() string {
	return k.ContentType + "/" + k.Context
}

// Catalog is an immutable index from (content type, context) to source bindings.
type Catalog struct {
	bindings map[CatalogKey][]SourceBinding
	keys     []CatalogKey
}

// NewCatalog indexes bindings, keeping their relative order within each key.
func NewCatalog(bindings []SourceBinding) *Catalog {
	c := &Catalog{bindings: make(map[CatalogKey][]SourceBinding)}
	for _, b := range bindings {
		key := CatalogKey{ContentType: b.ContentType, Context: b.Context}
		if _, ok := c.bindings[key]; !ok {
			c.keys = append(c.keys, key)
		}
		c.bindings[key] = append(c.bindings[key], b)
	}
	return c
}

// Resolve returns the bindings for a content type in a context.
// The returned slice must not be modified.
func (c *Catalog) Resolve(contentType, context string) []SourceBinding {
	if c == nil {
		return nil
	}
	return c.bindings[CatalogKey{ContentType: contentType, Context: context}]
}

// ResolveForField returns the transformations bound to one field location.
func (c *Catalog) ResolveForField(contentType, context, location string) []TransformationDescriptor {
	for _, b := range c.Resolve(contentType, context) {
		if b.Location == location {
			return b.Transformations
		}
	}
	return nil
}

// BindingForField returns the binding for one field location.
func (c *Catalog) BindingForField(contentType, context, location string) (SourceBinding, bool) {
	for _, b := range c.Resolve(contentType, context) {
		if b.Location == location {
			return b, true
		}
	}
	return SourceBinding{}, false
}

// Keys returns the indexed keys sorted by content type then context.
func (c *Catalog) Keys() []CatalogKey {
	if c == nil {
		return nil
	}
	keys := slices.Clone(c.keys)
	slices.SortFunc(keys, func(a, b CatalogKey) int {
		if n := strings.Compare(a.ContentType, b.ContentType); n != 0 {
			return n
		}
		return strings.Compare(a.Context, b.Context)
	})
	return keys
}

// Len returns the number of bindings in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, bs := range c.bindings {
		n += len(bs)
	}
	return n
}
