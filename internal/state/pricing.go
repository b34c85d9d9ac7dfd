package state

// Pricing holds the shipping rules applied to a cart subtotal.
type Pricing struct {
	// FreeShippingAbove is the subtotal that must be exceeded for free shipping.
	FreeShippingAbove int64
	// ShippingFee is charged when the subtotal does not exceed FreeShippingAbove.
	ShippingFee int64
}

// DefaultPricing ships free above 999 and charges a flat 50 otherwise.
var DefaultPricing = Pricing{FreeShippingAbove: 999, ShippingFee: 50}

// Summary is the order-summary block shown on the cart and checkout pages.
type Summary struct {
	Subtotal int64
	Shipping int64
	Total    int64
}

// FreeShipping reports whether no shipping fee applies.
func (s Summary) FreeShipping() bool {
	return s.Shipping == 0
}

// Summarize prices a subtotal.
func (p Pricing) Summarize(subtotal int64) Summary {
	shipping := p.ShippingFee
	if subtotal > p.FreeShippingAbove {
		shipping = 0
	}
	return Summary{Subtotal: subtotal, Shipping: shipping, Total: subtotal + shipping}
}
