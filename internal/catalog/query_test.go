package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	cat := loadTestdata(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"too short", "s", nil},
		{"whitespace trimmed to short", "  s ", nil},
		{"name match case-insensitive", "SUNSCREEN", []string{"p4"}},
		{"tag match", "retinol", []string{"p6"}},
		{"category match", "lip care", []string{"p9"}},
		{"tag shared by several", "hydration", []string{"p2", "p7"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.Search(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_LimitsResults(t *testing.T) {
	var products []Product
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		products = append(products, Product{ID: id, Slug: id, Name: "Serum " + id})
	}
	got := New(products).Search("serum")
	assert.Len(t, got, SearchLimit)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ids(got))
}

func TestFeaturedAndRelated(t *testing.T) {
	cat := loadTestdata(t)

	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}, ids(cat.Featured()))

	p1, _ := cat.Product("p1")
	assert.Equal(t, []string{"p3", "p10"}, ids(cat.Related(p1)))

	p9, _ := cat.Product("p9")
	assert.Empty(t, cat.Related(p9))
}

func TestFilter_Apply(t *testing.T) {
	cat := loadTestdata(t)
	all := cat.All()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter keeps all", Filter{}, ids(all)},
		{"max price", Filter{MaxPrice: 450}, []string{"p5", "p9"}},
		{"categories", Filter{Categories: []string{"sunscreen", "masks"}}, []string{"p4", "p8"}},
		{"rating passes any selected minimum", Filter{MinRatings: []float64{4.6, 4.8}}, []string{"p1", "p4", "p9"}},
		{"combined", Filter{MaxPrice: 900, Categories: []string{"serums"}, MinRatings: []float64{4.5}}, []string{"p1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(all)))
		})
	}
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{MaxPrice: 1}.IsZero())
}

func TestSort(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "beta", Price: 300, Rating: 4.1},
		{ID: "b", Name: "Alpha", Price: 100, Rating: 4.9},
		{ID: "c", Name: "gamma", Price: 200, Rating: 3.5},
	}

	assert.Equal(t, []string{"b", "c", "a"}, ids(Sort(products, SortPriceLow)))
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(products, SortPriceHigh)))
	assert.Equal(t, []string{"b", "a", "c"}, ids(Sort(products, SortRating)))
	assert.Equal(t, []string{"b", "a", "c"}, ids(Sort(products, SortName)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(products, SortDefault)))

	// Input slice is left untouched.
	assert.Equal(t, []string{"a", "b", "c"}, ids(products))
}

func TestSortKey_NextCycles(t *testing.T) {
	k := SortDefault
	seen := []SortKey{k}
	for i := 0; i < len(SortKeys); i++ {
		k = k.Next()
		seen = append(seen, k)
	}
	assert.Equal(t, SortDefault, k)
	assert.Equal(t, SortPriceLow, seen[1])
	assert.Equal(t, "Featured", SortDefault.Label())
	assert.Equal(t, "Top Rated", SortRating.Label())
}

func TestParseSortKey(t *testing.T) {
	k, ok := ParseSortKey(" price-high ")
	assert.True(t, ok)
	assert.Equal(t, SortPriceHigh, k)

	k, ok = ParseSortKey("cheapest")
	assert.False(t, ok)
	assert.Equal(t, SortDefault, k)

	k, ok = ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, SortDefault, k)
}
