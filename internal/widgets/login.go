package widgets

import "strings"

// LoginForm renders the sign-in form around already rendered inputs.
func LoginForm(emailInput, passwordInput string, focus int, styles Styles, width int) string {
	fieldWidth := min(max(24, width/2), 50)
	field := func(idx int, label, input string) string {
		style := styles.Field
		if idx == focus {
			style = styles.FieldFocus
		}
		return styles.MutedText.Render(label) + "\n" + style.Width(fieldWidth).Render(input)
	}
	return strings.Join([]string{
		styles.Title.Render("Sign in to Skinnova"),
		field(0, "Email", emailInput),
		field(1, "Password", passwordInput),
		styles.FaintText.Render("enter Sign in"),
	}, "\n")
}
