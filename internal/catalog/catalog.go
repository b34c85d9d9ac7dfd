package catalog

import (
	"sort"
	"strings"
)

// Catalog is the ordered, read-only product list for a session.
type Catalog struct {
	products []Product
	byID     map[string]int
	bySlug   map[string]int
	dropped  int
}

// New indexes products. Entries with an empty id, or an id or slug already
// seen, are dropped so both stay unique across the catalog.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			c.dropped++
			continue
		}
		if _, dup := c.byID[id]; dup {
			c.dropped++
			continue
		}
		if p.Slug != "" {
			if _, dup := c.bySlug[p.Slug]; dup {
				c.dropped++
				continue
			}
		}
		p.ID = id
		idx := len(c.products)
		c.products = append(c.products, p)
		c.byID[id] = idx
		if p.Slug != "" {
			c.bySlug[p.Slug] = idx
		}
	}
	return c
}

// Empty returns a catalog with no products.
func Empty() *Catalog {
	return New(nil)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Dropped reports how many entries New discarded.
func (c *Catalog) Dropped() int {
	if c == nil {
		return 0
	}
	return c.dropped
}

// All returns a copy of the products in catalog order.
func (c *Catalog) All() []Product {
	if c == nil || len(c.products) == 0 {
		return nil
	}
	dup := make([]Product, len(c.products))
	copy(dup, c.products)
	return dup
}

// Product looks a product up by id.
func (c *Catalog) Product(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// BySlug looks a product up by its URL key.
func (c *Catalog) BySlug(slug string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	idx, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// MaxPrice returns the highest price in the catalog, or 0 when empty.
func (c *Catalog) MaxPrice() int64 {
	var highest int64
	if c == nil {
		return highest
	}
	for _, p := range c.products {
		if p.Price > highest {
			highest = p.Price
		}
	}
	return highest
}
