package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dwikikusuma/qkart-client/internal/notify"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("29")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("36"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewSearch())
	b.WriteString("\n")

	products := m.viewProducts()
	cart := m.viewCart()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, products, cart))
	b.WriteString("\n")
	b.WriteString(m.viewStatus())

	return b.String()
}

func (m Model) viewHeader() string {
	title := "QKart"
	who := "guest"
	if m.username != "" {
		who = m.username
	}
	return headerStyle.Render(title) + dimStyle.Render("  "+who+"  tab: switch panel  q: quit")
}

func (m Model) viewSearch() string {
	style := panelStyle
	if m.focus == focusSearch {
		style = focusedPanelStyle
	}
	return style.Render(m.search.View())
}

func (m Model) viewProducts() string {
	style := panelStyle
	if m.focus == focusProducts {
		style = focusedPanelStyle
	}

	products := m.store.Catalog()
	if m.loading && len(products) == 0 {
		return style.Render(m.spin.View() + " Loading products…")
	}
	if len(products) == 0 {
		return style.Render("No products found")
	}

	var rows []string
	for i, p := range products {
		row := fmt.Sprintf("%-28s %-12s $%-5.0f %d/5", truncate(p.Name, 28), p.Category, p.Cost, p.Rating)
		if m.focus == focusProducts && i == m.cursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) viewCart() string {
	style := panelStyle
	if m.focus == focusCart {
		style = focusedPanelStyle
	}

	if !m.store.HasCart() {
		return style.Render(dimStyle.Render("Login to see your cart"))
	}

	lines := m.store.Lines()
	if len(lines) == 0 {
		return style.Render(dimStyle.Render("Cart is empty.\nAdd more items to the cart to checkout"))
	}

	var rows []string
	for i, l := range lines {
		row := fmt.Sprintf("%-24s x%-3d $%.0f", truncate(l.Name, 24), l.Qty, float64(l.Qty)*l.Cost)
		if m.focus == focusCart && i == m.cursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("Order total  $%.0f (%d items)", m.store.TotalValue(), m.store.TotalItems()))
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	switch m.statusSev {
	case notify.SeveritySuccess:
		return successStyle.Render(m.status)
	case notify.SeverityWarning:
		return warningStyle.Render(m.status)
	default:
		return errorStyle.Render(m.status)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
