package catalog

// Payload mirrors the static catalog resource.
type Payload struct {
	Products []Product `json:"products"`
}

// Product is a read-only catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	LongDesc    string   `json:"longDesc"`
	Ingredients []string `json:"ingredients"`
	Reviews     []Review `json:"reviews"`
}

// Review is a customer review attached to a product.
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// PrimaryImage returns the first image or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
