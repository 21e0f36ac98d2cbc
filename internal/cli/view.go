package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mapflinger/internal/tui"
)

func (a *app) runView(cmd *cobra.Command, args []string) error {
	var opts []tui.Option
	if sheet := a.cfg.GetString("icons"); sheet != "" {
		e, err := a.loadIcons(sheet)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithIcons(e))
	}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(args[0], opts...)
	} else {
		m = tui.New(opts...)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
