package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/backup"
	"ricettario/internal/catalog"
	"ricettario/internal/util"
	"ricettario/internal/wizard"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, repo *catalog.Repository, codec *backup.Codec, wiz *wizard.Wizard, cfg util.Config, version string) error {
	m := initialModel(ctx, repo, codec, wiz, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
