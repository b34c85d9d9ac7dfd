package catalog

import (
	"slices"
	"sort"
	"strings"
)

const (
	// SearchMinQuery is the shortest query that produces results.
	SearchMinQuery = 2
	// SearchLimit caps the number of search results.
	SearchLimit = 6
	// FeaturedLimit is how many products the home page shows.
	FeaturedLimit = 8
	// RelatedLimit is how many related products a detail page shows.
	RelatedLimit = 4
)

// SortKey names a product ordering.
type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// SortKeys lists the orderings in the order the UI cycles through them.
var SortKeys = []SortKey{SortDefault, SortPriceLow, SortPriceHigh, SortRating, SortName}

// Label returns a human readable name for the ordering.
func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortRating:
		return "Top Rated"
	case SortName:
		return "Name"
	default:
		return "Featured"
	}
}

// Next returns the ordering after k in SortKeys.
func (k SortKey) Next() SortKey {
	idx := slices.Index(SortKeys, k)
	return SortKeys[(idx+1)%len(SortKeys)]
}

// ParseSortKey resolves a stored ordering name. Unknown names yield
// SortDefault and false.
func ParseSortKey(name string) (SortKey, bool) {
	k := SortKey(strings.TrimSpace(name))
	if !slices.Contains(SortKeys, k) {
		return SortDefault, false
	}
	return k, true
}

// Search matches query against name, tags and category, case-insensitively.
// Queries shorter than SearchMinQuery return nothing.
func (c *Catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < SearchMinQuery || c == nil {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		if !matches(p, q) {
			continue
		}
		out = append(out, p)
		if len(out) == SearchLimit {
			break
		}
	}
	return out
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Category), q)
}

// Featured returns the first FeaturedLimit products.
func (c *Catalog) Featured() []Product {
	all := c.All()
	if len(all) > FeaturedLimit {
		all = all[:FeaturedLimit]
	}
	return all
}

// Related returns up to RelatedLimit other products in p's category.
func (c *Catalog) Related(p Product) []Product {
	if c == nil {
		return nil
	}
	var out []Product
	for _, other := range c.products {
		if other.Category != p.Category || other.ID == p.ID {
			continue
		}
		out = append(out, other)
		if len(out) == RelatedLimit {
			break
		}
	}
	return out
}

// Filter narrows a product list. Zero values disable a criterion.
type Filter struct {
	MaxPrice   int64
	Categories []string
	MinRatings []float64
}

// IsZero reports whether the filter lets everything through.
func (f Filter) IsZero() bool {
	return f.MaxPrice <= 0 && len(f.Categories) == 0 && len(f.MinRatings) == 0
}

// Apply returns the products that pass every active criterion. A product
// passes the rating criterion when its rating reaches any selected minimum.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if len(f.MinRatings) > 0 && !slices.ContainsFunc(f.MinRatings, func(floor float64) bool { return p.Rating >= floor }) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a copy of products ordered by key. Unknown keys keep catalog order.
func Sort(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}
