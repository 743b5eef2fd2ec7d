package catalog

import (
	"slices"

	"github.com/mugiliam/labcatalog/internal/apperrors"
	"github.com/mugiliam/labcatalog/pkg/types"
)

// EntryRef locates an entry inside the catalog.
type EntryRef struct {
	Document *Document
	Index    int
	Entry    types.CatalogEntry
}

// Catalog is the immutable set of documents loaded for one build. When a
// name or symbol is defined twice the first definition wins for lookups and
// Validate reports the duplicate.
type Catalog struct {
	docs     []*Document
	byName   map[string]*Document
	bySymbol map[string]EntryRef
}

func New(docs ...*Document) *Catalog {
	c := &Catalog{
		docs:     slices.Clone(docs),
		byName:   make(map[string]*Document, len(docs)),
		bySymbol: make(map[string]EntryRef),
	}
	for _, d := range c.docs {
		if _, ok := c.byName[d.Name()]; !ok {
			c.byName[d.Name()] = d
		}
		for i, e := range d.resource.Spec.Entries {
			if e.DefinitionSymbol == "" {
				continue
			}
			if _, ok := c.bySymbol[e.DefinitionSymbol]; !ok {
				c.bySymbol[e.DefinitionSymbol] = EntryRef{Document: d, Index: i, Entry: e}
			}
		}
	}
	return c
}

func (c *Catalog) Documents() []*Document {
	return slices.Clone(c.docs)
}

func (c *Catalog) Document(name string) (*Document, apperrors.Error) {
	d, ok := c.byName[name]
	if !ok {
		return nil, ErrDocumentNotFound.Msg("catalog " + name + " not found")
	}
	return d, nil
}

func (c *Catalog) Lookup(symbol string) (EntryRef, apperrors.Error) {
	ref, ok := c.bySymbol[symbol]
	if !ok {
		return EntryRef{}, ErrEntryNotFound.Msg("definition " + symbol + " not found")
	}
	return ref, nil
}

// Len returns the number of entries across all documents.
func (c *Catalog) Len() int {
	n := 0
	for _, d := range c.docs {
		n += d.Len()
	}
	return n
}
