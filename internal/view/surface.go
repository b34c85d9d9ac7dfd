package view

// Page identifies the screen the shopper is looking at.
type Page string

const (
	PageHome     Page = "home"
	PageCategory Page = "category"
	PageProduct  Page = "product"
	PageCart     Page = "cart"
	PageCheckout Page = "checkout"
	PageWishlist Page = "wishlist"
	PageLogin    Page = "login"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageCategory, PageProduct, PageCart, PageCheckout, PageWishlist, PageLogin}

// ParsePage maps a page name to a Page. Unknown names report false.
func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Title returns the heading shown for the page.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageCategory:
		return "Shop"
	case PageProduct:
		return "Product"
	case PageCart:
		return "Cart"
	case PageCheckout:
		return "Checkout"
	case PageWishlist:
		return "Wishlist"
	case PageLogin:
		return "Login"
	default:
		return string(p)
	}
}

// Region names a replaceable part of the screen.
type Region string

const (
	RegionBadge        Region = "badge"
	RegionCartItems    Region = "cart-items"
	RegionCartSummary  Region = "cart-summary"
	RegionWishlistGrid Region = "wishlist-grid"
)

// Surface is what the UI exposes to the Synchronizer. Regions that the
// active page does not show may be written anyway; the surface keeps the
// latest content and displays it when the region becomes visible.
type Surface interface {
	ActivePage() Page
	Replace(region Region, content string)
	Show(region Region, visible bool)
	SetWishlistActive(productID string, active bool)
}
