package state

import "testing"

func TestSummarize_ShippingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		shipping int64
		total    int64
	}{
		{"empty cart", 0, 50, 50},
		{"below threshold", 500, 50, 550},
		{"at threshold pays shipping", 999, 50, 1049},
		{"one above threshold ships free", 1000, 0, 1000},
		{"well above threshold", 1200, 0, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultPricing.Summarize(tt.subtotal)
			if got.Subtotal != tt.subtotal || got.Shipping != tt.shipping || got.Total != tt.total {
				t.Fatalf("Summarize(%d) = %+v, want shipping %d total %d", tt.subtotal, got, tt.shipping, tt.total)
			}
			if got.FreeShipping() != (tt.shipping == 0) {
				t.Fatalf("FreeShipping() = %v for shipping %d", got.FreeShipping(), got.Shipping)
			}
		})
	}
}

func TestSummarize_CustomPricing(t *testing.T) {
	p := Pricing{FreeShippingAbove: 2000, ShippingFee: 70}
	if got := p.Summarize(2000); got.Shipping != 70 || got.Total != 2070 {
		t.Fatalf("Summarize(2000) = %+v, want shipping 70", got)
	}
	if got := p.Summarize(2001); got.Shipping != 0 {
		t.Fatalf("Summarize(2001) = %+v, want free shipping", got)
	}
}
