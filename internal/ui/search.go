package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openSearch() {
	m.search.active = true
	m.search.input.SetValue("")
	m.search.input.Focus()
	m.search.results = nil
	m.search.cursor = 0
}

func (m *Model) closeSearch() {
	m.search.active = false
	m.search.input.Blur()
}

// handleSearchKey handles keyboard input while the search overlay is open.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeSearch()
		return nil
	case tea.KeyUp:
		m.search.cursor = max(0, m.search.cursor-1)
		return nil
	case tea.KeyDown:
		m.search.cursor = min(max(0, len(m.search.results)-1), m.search.cursor+1)
		return nil
	case tea.KeyEnter:
		if m.search.cursor < len(m.search.results) {
			p := m.search.results[m.search.cursor]
			m.closeSearch()
			m.openProduct(p)
		}
		return nil
	}

	// Let the text input handle the key
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.results = m.catalog.Search(m.search.input.Value())
	m.search.cursor = min(m.search.cursor, max(0, len(m.search.results)-1))
	return cmd
}
