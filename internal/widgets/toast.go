package widgets

import "strings"

// ToastKind selects the toast accent.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a short-lived notification. A new toast replaces the current one.
type Toast struct {
	Title   string
	Message string
	Kind    ToastKind
}

// RenderToast draws the toast box.
func RenderToast(t Toast, styles Styles) string {
	title := styles.Title
	switch t.Kind {
	case ToastSuccess:
		title = styles.SuccessText
	case ToastError:
		title = styles.DangerText
	}
	lines := []string{title.Render(t.Title)}
	if strings.TrimSpace(t.Message) != "" {
		lines = append(lines, styles.MutedText.Render(t.Message))
	}
	return styles.Dialog.Padding(0, 1).Render(strings.Join(lines, "\n"))
}
