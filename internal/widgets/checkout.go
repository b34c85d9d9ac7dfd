package widgets

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/skinnova/internal/state"
)

// CheckoutField identifies one input of the checkout form.
type CheckoutField string

const (
	FieldName    CheckoutField = "name"
	FieldEmail   CheckoutField = "email"
	FieldPhone   CheckoutField = "phone"
	FieldAddress CheckoutField = "address"
	FieldCity    CheckoutField = "city"
	FieldPincode CheckoutField = "pincode"
)

// CheckoutFields lists the form inputs in display order. All are required.
var CheckoutFields = []CheckoutField{FieldName, FieldEmail, FieldPhone, FieldAddress, FieldCity, FieldPincode}

// Label returns the field's caption.
func (f CheckoutField) Label() string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldAddress:
		return "Address"
	case FieldCity:
		return "City"
	case FieldPincode:
		return "Pincode"
	default:
		return string(f)
	}
}

// PaymentMethods are the options offered on the checkout page.
var PaymentMethods = []string{"UPI", "Credit / Debit Card", "Cash on Delivery"}

// ValidationError lists the required fields left blank.
type ValidationError struct {
	Fields []CheckoutField
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}
	return "missing required fields: " + strings.Join(names, ", ")
}

// Has reports whether f failed validation.
func (e *ValidationError) Has(f CheckoutField) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.Fields, f)
}

// ValidateCheckout checks that every required field has a non-blank value.
// It returns *ValidationError listing the blank fields in form order.
func ValidateCheckout(values map[CheckoutField]string) error {
	var missing []CheckoutField
	for _, f := range CheckoutFields {
		if strings.TrimSpace(values[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// OrderDraft is the order assembled from a valid checkout. It is never sent
// anywhere; the reference lets a shopper quote it.
type OrderDraft struct {
	Reference string
	CreatedAt time.Time
	Contact   map[CheckoutField]string
	Payment   string
	Lines     []state.CartLine
	Summary   state.Summary
}

// NewOrderDraft builds a draft with a fresh reference.
func NewOrderDraft(contact map[CheckoutField]string, payment string, snap state.Snapshot, pricing state.Pricing, now time.Time) OrderDraft {
	dup := make(map[CheckoutField]string, len(contact))
	for k, v := range contact {
		dup[k] = strings.TrimSpace(v)
	}
	return OrderDraft{
		Reference: uuid.NewString(),
		CreatedAt: now,
		Contact:   dup,
		Payment:   payment,
		Lines:     snap.Cart,
		Summary:   pricing.Summarize(snap.Total()),
	}
}

// FormData is the checkout page state.
type FormData struct {
	Values  map[CheckoutField]string
	Focus   int
	Payment int
	Err     *ValidationError
}

// CheckoutForm renders the form. Fields that failed validation get the
// error border; the focused one gets the focus border.
func CheckoutForm(d FormData, styles Styles, width int) string {
	fieldWidth := min(max(24, width/2), 60)
	var b strings.Builder
	b.WriteString(styles.Title.Render("Shipping Details"))
	b.WriteString("\n")
	for i, f := range CheckoutFields {
		style := styles.Field
		switch {
		case d.Err.Has(f):
			style = styles.FieldError
		case i == d.Focus:
			style = styles.FieldFocus
		}
		label := f.Label() + " *"
		if d.Err.Has(f) {
			label = styles.DangerText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label + "\n")
		b.WriteString(style.Width(fieldWidth).Render(d.Values[f]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Title.Render("Payment Method"))
	b.WriteString("\n")
	for i, m := range PaymentMethods {
		mark := "( )"
		if i == d.Payment {
			mark = "(•)"
		}
		line := mark + " " + m
		if i == d.Payment {
			b.WriteString(styles.AccentText.Render(line) + "\n")
			continue
		}
		b.WriteString(styles.Text.Render(line) + "\n")
	}
	return b.String()
}

// PaymentGateways are suggested in the payment notice.
var PaymentGateways = []string{"Razorpay", "Stripe", "PayU", "CCAvenue"}

// PaymentNotice renders the dialog shown in place of placing an order.
func PaymentNotice(draft OrderDraft, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Payment Integration Required"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("This storefront is a demo. To complete orders, integrate a payment gateway such as:"))
	b.WriteString("\n")
	for _, g := range PaymentGateways {
		b.WriteString("  • " + styles.Text.Render(g) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Text.Render("Your order details are ready and can be sent to your backend API."))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Reference ") + styles.AccentText.Render(draft.Reference))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Total     ") + Price(draft.Summary.Total, styles))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter Got it"))
	return styles.Dialog.Width(60).Render(b.String())
}

// LoginNotice is the toast shown when the login form is submitted.
func LoginNotice() Toast {
	return Toast{
		Title:   "Demo Mode",
		Message: "Authentication not implemented in this storefront",
		Kind:    ToastInfo,
	}
}

// ValidationToast summarises a failed checkout.
func ValidationToast(err *ValidationError) Toast {
	return Toast{
		Title:   "Validation Error",
		Message: fmt.Sprintf("Please fill in all required fields (%d missing)", len(err.Fields)),
		Kind:    ToastError,
	}
}
