package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"ricettario/internal/catalog"
	"ricettario/internal/i18n"
	"ricettario/internal/remote"
	"ricettario/internal/wizard"
)

// Wizard remote calls run as tea commands so the update loop never blocks.
// Each message carries the generation it was started under; the wizard drops
// results from a superseded session on apply.
type (
	connTestedMsg    wizard.ConnResult
	schemaCheckedMsg wizard.CheckResult
	provisionedMsg   wizard.ProvisionResult
)

func (m model) connTestCmd(t wizard.ConnTest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.wiz.CallContext(m.ctx)
		defer cancel()
		return connTestedMsg(m.wiz.RunConnectionTest(ctx, t))
	}
}

func (m model) schemaCheckCmd(chk wizard.SchemaCheck) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.wiz.CallContext(m.ctx)
		defer cancel()
		return schemaCheckedMsg(m.wiz.RunSchemaCheck(ctx, chk))
	}
}

func (m model) provisionCmd(p wizard.Provision) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.wiz.CallContext(m.ctx)
		defer cancel()
		return provisionedMsg(m.wiz.RunProvision(ctx, p))
	}
}

func (m model) applyConnTested(msg connTestedMsg) (tea.Model, tea.Cmd) {
	m.wiz.ApplyConnectionTest(wizard.ConnResult(msg))
	// a successful test moves into the schema check, which starts right away
	if chk, ok := m.wiz.StartSchemaCheck(); ok {
		return m, m.schemaCheckCmd(chk)
	}
	return m, nil
}

func (m model) applySchemaChecked(msg schemaCheckedMsg) (tea.Model, tea.Cmd) {
	m.wiz.ApplySchemaCheck(wizard.CheckResult(msg))
	if m.wiz.State() == wizard.StateConnected {
		m.markStorageRemote()
	}
	return m, nil
}

func (m model) applyProvisioned(msg provisionedMsg) (tea.Model, tea.Cmd) {
	m.wiz.ApplyProvision(wizard.ProvisionResult(msg))
	if m.wiz.State() == wizard.StateConnected {
		m.markStorageRemote()
	}
	return m, nil
}

func (m *model) markStorageRemote() {
	mode := catalog.StorageRemote
	if _, err := m.repo.UpdateSettings(catalog.SettingsPatch{DataStorage: &mode}); err != nil {
		m.status = err.Error()
	}
}

func (m model) updateWizard(k string) (tea.Model, tea.Cmd) {
	switch m.wiz.State() {
	case wizard.StateIntro:
		switch k {
		case "esc", "q":
			m.wiz.Close()
			m.view = viewSettings
		case "enter":
			m.wiz.Proceed()
		}
	case wizard.StateCredentials:
		switch {
		case k == "esc":
			m.wiz.Close()
			m.view = viewSettings
		case k == "tab" || k == "down" || k == "up":
			m.wizField = 1 - m.wizField
		case k == "enter":
			if test, ok := m.wiz.StartConnectionTest(); ok {
				return m, m.connTestCmd(test)
			}
		case k == "backspace":
			url, key := m.wiz.URL(), m.wiz.AnonKey()
			if m.wizField == 0 && len(url) > 0 {
				m.wiz.SetCredentials(trimLastRune(url), key)
			} else if m.wizField == 1 && len(key) > 0 {
				m.wiz.SetCredentials(url, trimLastRune(key))
			}
		case isRuneInput(k):
			url, key := m.wiz.URL(), m.wiz.AnonKey()
			if m.wizField == 0 {
				m.wiz.SetCredentials(url+k, key)
			} else {
				m.wiz.SetCredentials(url, key+k)
			}
		}
	case wizard.StateSchemaCheck:
		switch k {
		case "esc":
			m.wiz.Close()
			m.view = viewSettings
		case "r":
			if chk, ok := m.wiz.StartSchemaCheck(); ok {
				return m, m.schemaCheckCmd(chk)
			}
		case "c", "enter":
			if p, ok := m.wiz.StartProvision(); ok {
				return m, m.provisionCmd(p)
			}
		}
	case wizard.StateConnected:
		switch k {
		case "esc", "q", "enter":
			m.view = viewSettings
		case "x":
			if err := m.wiz.Disconnect(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			mode := catalog.StorageLocal
			if _, err := m.repo.UpdateSettings(catalog.SettingsPatch{DataStorage: &mode}); err != nil {
				m.status = err.Error()
			}
		}
	}
	return m, nil
}

func (m model) renderWizard() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyWizardTitle)) + "\n\n")

	switch m.wiz.State() {
	case wizard.StateIntro:
		b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyStep1Title)) + "\n")
		b.WriteString(m.loc.Text(i18n.KeyStep1Desc) + "\n\n")
		b.WriteString(m.mutedStyle().Render("[enter] " + m.loc.Text(i18n.KeyNextStep) + "  [esc] back"))
	case wizard.StateCredentials:
		b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyStep2Title)) + "\n")
		b.WriteString(m.loc.Text(i18n.KeyStep2Desc) + "\n\n")
		b.WriteString(m.credLine(0, m.loc.Text(i18n.KeyProjectURL), m.wiz.URL(), false))
		b.WriteString(m.credLine(1, m.loc.Text(i18n.KeyAnonKey), m.wiz.AnonKey(), true))
		b.WriteString("\n")
		if m.wiz.Busy() {
			b.WriteString(m.loc.Text(i18n.KeyTestingConnection) + "\n")
		} else if err := m.wiz.Err(); err != nil {
			b.WriteString(m.wizardError(err) + "\n")
		}
		b.WriteString(m.mutedStyle().Render("[tab] campo  [enter] " + m.loc.Text(i18n.KeyTestConnection) + "  [esc] back"))
	case wizard.StateSchemaCheck:
		b.WriteString(m.loc.Text(i18n.KeyConnectionSuccess) + "\n\n")
		b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyStep3Title)) + "\n")
		switch {
		case m.wiz.Busy():
			b.WriteString(m.loc.Text(i18n.KeyCheckingTables) + "\n")
		case m.wiz.Err() != nil:
			b.WriteString(m.wizardError(m.wiz.Err()) + "\n")
			if m.wiz.CanProvision() {
				b.WriteString("\n" + m.mutedStyle().Render("[c] "+m.loc.Text(i18n.KeyCreateTables)+"  [esc] back"))
			} else {
				b.WriteString("\n" + m.mutedStyle().Render("[r] "+m.loc.Text(i18n.KeyTestConnection)+"  [esc] back"))
			}
			return m.boxStyle(70).Render(b.String())
		case !m.wiz.TableKnown():
			b.WriteString(m.loc.Text(i18n.KeyTablesUnknown) + "\n")
			b.WriteString("\n" + m.mutedStyle().Render("[r] retry  [esc] back"))
			return m.boxStyle(70).Render(b.String())
		default:
			b.WriteString(m.loc.Text(i18n.KeyTablesNok) + "\n")
		}
		if m.wiz.CanProvision() {
			b.WriteString("\n" + m.mutedStyle().Render("[c] "+m.loc.Text(i18n.KeyCreateTables)+"  [esc] back"))
		} else {
			b.WriteString("\n" + m.mutedStyle().Render("[esc] back"))
		}
	case wizard.StateConnected:
		b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyStep4Title)) + "\n")
		b.WriteString(m.loc.Text(i18n.KeyStep4Desc) + "\n")
		if cfg := m.repo.LoadSettings().Remote; cfg != nil {
			b.WriteString(m.mutedStyle().Render(cfg.URL) + "\n")
		}
		b.WriteString("\n" + m.mutedStyle().Render("[x] "+m.loc.Text(i18n.KeyDisconnect)+"  [esc] back"))
	}
	return m.boxStyle(70).Render(b.String())
}

func (m model) credLine(field int, label, value string, mask bool) string {
	cursor := "  "
	if mask {
		value = strings.Repeat("*", len(value))
	}
	if m.wizField == field {
		cursor = "> "
		value += "_"
	}
	return fmt.Sprintf("%s%-16s %s\n", cursor, label+":", value)
}

// wizardError maps client failures onto the localized wizard messages.
func (m model) wizardError(err error) string {
	style := lipgloss.NewStyle().Foreground(m.pal.Danger)
	switch {
	case errors.Is(err, remote.ErrInvalidCredentials):
		return style.Render(m.loc.Text(i18n.KeyInvalidCredentials))
	case errors.Is(err, remote.ErrUnreachable):
		return style.Render(m.loc.Text(i18n.KeyConnectionError))
	case errors.Is(err, remote.ErrRPCUnavailable):
		return style.Render(m.loc.Text(i18n.KeyTablesRPCMissing))
	case errors.Is(err, remote.ErrExecutionFailed):
		return style.Render(m.loc.Text(i18n.KeyTablesCreateError))
	}
	return style.Render(err.Error())
}
