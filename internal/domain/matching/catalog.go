package matching

import (
	"sort"

	"invoice-recon/internal/domain/entities"
)

// Catalog is an immutable snapshot of the product catalog taken once per
// reconciliation run. The matcher never reaches into shared mutable state;
// every Match call works against the snapshot it was given.
type Catalog struct {
	products    []entities.Product
	byNormName  map[string][]entities.Product
	aliasToID   map[string]string
	byID        map[string]entities.Product
	knownBrands []string
}

// NewCatalog builds a snapshot from catalog products and the alias table.
// Products are kept in lexicographic id order so cascade tie-breaking is
// deterministic regardless of store ordering.
func NewCatalog(products []entities.Product, aliases []entities.ProductAlias) *Catalog {
	c := &Catalog{
		products:   make([]entities.Product, len(products)),
		byNormName: make(map[string][]entities.Product, len(products)),
		aliasToID:  make(map[string]string, len(aliases)),
		byID:       make(map[string]entities.Product, len(products)),
	}
	copy(c.products, products)
	sort.Slice(c.products, func(i, j int) bool { return c.products[i].ID < c.products[j].ID })

	brandSeen := map[string]bool{}
	for _, p := range c.products {
		norm := NormalizeName(p.Name)
		c.byNormName[norm] = append(c.byNormName[norm], p)
		c.byID[p.ID] = p
		if b := NormalizeName(p.Brand); b != "" && !brandSeen[b] {
			brandSeen[b] = true
			c.knownBrands = append(c.knownBrands, b)
		}
	}
	// Longest brand first so "MOTHER DAIRY" wins over "MOTHER".
	sort.Slice(c.knownBrands, func(i, j int) bool {
		if len(c.knownBrands[i]) != len(c.knownBrands[j]) {
			return len(c.knownBrands[i]) > len(c.knownBrands[j])
		}
		return c.knownBrands[i] < c.knownBrands[j]
	})

	for _, a := range aliases {
		norm := NormalizeName(a.Alias)
		if norm == "" {
			continue
		}
		// First alias wins; duplicates in the table must not flip matches.
		if _, ok := c.aliasToID[norm]; !ok {
			c.aliasToID[norm] = a.ProductID
		}
	}
	return c
}

// Products returns the snapshot in id order.
func (c *Catalog) Products() []entities.Product {
	return c.products
}

// LookupExact returns products whose normalized name equals norm, id order.
func (c *Catalog) LookupExact(norm string) []entities.Product {
	return c.byNormName[norm]
}

// ResolveAlias maps a normalized alias to its product, if the alias target
// still exists in the catalog.
func (c *Catalog) ResolveAlias(norm string) (entities.Product, bool) {
	id, ok := c.aliasToID[norm]
	if !ok {
		return entities.Product{}, false
	}
	p, ok := c.byID[id]
	return p, ok
}

// ParseBrand returns the known brand the normalized name starts with, or "".
func (c *Catalog) ParseBrand(norm string) string {
	for _, b := range c.knownBrands {
		if norm == b {
			return b
		}
		if len(norm) > len(b) && norm[:len(b)] == b && norm[len(b)] == ' ' {
			return b
		}
	}
	return ""
}

// CandidatesByBrand returns the products of one brand, id order.
func (c *Catalog) CandidatesByBrand(brand string) []entities.Product {
	var out []entities.Product
	for _, p := range c.products {
		if NormalizeName(p.Brand) == brand {
			out = append(out, p)
		}
	}
	return out
}
