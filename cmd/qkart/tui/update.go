package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bootstrappedMsg:
		m.loading = false
		m.drainNotices()
		return m, nil

	case storeUpdatedMsg:
		m.clampCursor()
		m.drainNotices()
		return m, m.waitForUpdate()

	case actionDoneMsg:
		m.loading = false
		m.clampCursor()
		m.drainNotices()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = m.nextFocus()
		m.cursor = 0
		if m.focus == focusSearch {
			m.search.Focus()
		} else {
			m.search.Blur()
		}
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusProducts:
		return m.handleProductsKey(msg)
	default:
		return m.handleCartKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		// SearchNow does the round trip synchronously, so it runs as a
		// command instead of blocking the event loop.
		text := m.search.Value()
		m.loading = true
		return m, m.action(func() { m.store.SearchNow(text) })
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.OnSearchInput(m.search.Value())
	return m, cmd
}

func (m Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.store.Catalog()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(products)-1 {
			m.cursor++
		}
	case "enter", "a":
		if m.cursor < len(products) {
			id := products[m.cursor].ID
			m.loading = true
			return m, m.action(func() { m.store.AddToCart(m.ctx, id) })
		}
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.store.Lines()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(lines)-1 {
			m.cursor++
		}
	case "+", "right", "l":
		if m.cursor < len(lines) {
			id := lines[m.cursor].ProductID
			m.loading = true
			return m, m.action(func() { m.store.IncrementQuantity(m.ctx, id) })
		}
	case "-", "left", "h":
		if m.cursor < len(lines) {
			id := lines[m.cursor].ProductID
			m.loading = true
			return m, m.action(func() { m.store.DecrementQuantity(m.ctx, id) })
		}
	}
	return m, nil
}

// action runs a cart mutation off the event loop so a slow backend does not
// freeze the UI.
func (m Model) action(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return actionDoneMsg{}
	}
}

func (m Model) nextFocus() focusArea {
	switch m.focus {
	case focusSearch:
		return focusProducts
	case focusProducts:
		return focusCart
	default:
		return focusSearch
	}
}

func (m *Model) drainNotices() {
	for _, n := range m.notices.Drain() {
		m.status = n.Message
		m.statusSev = n.Severity
	}
}

func (m *Model) clampCursor() {
	var limit int
	switch m.focus {
	case focusProducts:
		limit = len(m.store.Catalog())
	case focusCart:
		limit = len(m.store.Lines())
	default:
		return
	}
	if limit == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= limit {
		m.cursor = limit - 1
	}
}
