package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/five82/skinnova/internal/view"
	"github.com/five82/skinnova/internal/widgets"
)

func newCheckoutInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(widgets.CheckoutFields))
	for i, f := range widgets.CheckoutFields {
		ti := textinput.New()
		ti.Placeholder = f.Label()
		ti.CharLimit = 120
		ti.Prompt = ""
		inputs[i] = ti
	}
	return inputs
}

func newLoginInputs() []textinput.Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Prompt = ""

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return []textinput.Model{email, password}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.CharLimit = 100
	return ti
}

// focusPageInputs gives keyboard focus to the active page's current field.
func (m *Model) focusPageInputs() {
	page := m.screen.ActivePage()
	for i := range m.checkout.inputs {
		if page == view.PageCheckout && i == m.checkout.focus {
			m.checkout.inputs[i].Focus()
			continue
		}
		m.checkout.inputs[i].Blur()
	}
	for i := range m.login.inputs {
		if page == view.PageLogin && i == m.login.focus {
			m.login.inputs[i].Focus()
			continue
		}
		m.login.inputs[i].Blur()
	}
}

// checkoutValues returns the raw form values keyed by field.
func (m Model) checkoutValues() map[widgets.CheckoutField]string {
	values := make(map[widgets.CheckoutField]string, len(widgets.CheckoutFields))
	for i, f := range widgets.CheckoutFields {
		values[f] = m.checkout.inputs[i].Value()
	}
	return values
}
