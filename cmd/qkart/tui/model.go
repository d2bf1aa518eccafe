// Package tui is the interactive storefront: a searchable product grid with
// a cart sidebar, driven by the storefront service. The implementation is
// split across model.go (types, Init), update.go (event loop) and view.go
// (rendering).
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dwikikusuma/qkart-client/internal/notify"
	storefrontapp "github.com/dwikikusuma/qkart-client/internal/storefront/app"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusProducts
	focusCart
)

// Model is the bubbletea model for the storefront screen.
type Model struct {
	ctx      context.Context
	store    *storefrontapp.Service
	notices  *notify.Recorder
	username string

	search  textinput.Model
	spin    spinner.Model
	focus   focusArea
	cursor  int // selected row in the focused panel
	loading bool

	status    string
	statusSev notify.Severity

	width  int
	height int
}

// Messages produced by commands.
type (
	bootstrappedMsg struct{}
	storeUpdatedMsg struct{}
	actionDoneMsg   struct{}
)

func New(ctx context.Context, store *storefrontapp.Service, notices *notify.Recorder, username string) Model {
	search := textinput.New()
	search.Placeholder = "Search for items/categories"
	search.Prompt = "🔍 "
	search.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))

	return Model{
		ctx:      ctx,
		store:    store,
		notices:  notices,
		username: username,
		search:   search,
		spin:     spin,
		focus:    focusSearch,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.bootstrap(), m.waitForUpdate())
}

func (m Model) bootstrap() tea.Cmd {
	return func() tea.Msg {
		m.store.Bootstrap(m.ctx)
		return bootstrappedMsg{}
	}
}

// waitForUpdate blocks on the storefront's change signal so the view
// refreshes when a debounced search lands.
func (m Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-m.store.Updates()
		return storeUpdatedMsg{}
	}
}
