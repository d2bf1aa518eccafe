package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dwikikusuma/qkart-client/cmd/qkart/tui"
	"github.com/dwikikusuma/qkart-client/internal/notify"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	notices := notify.NewRecorder()
	a, err := newApp(notices)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}

	model := tui.New(a.ctx, a.store, notices, sess.Username)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err = program.Run()
	return err
}
