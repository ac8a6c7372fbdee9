package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskbook/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Palette.Active {
			next := m.handlePaletteKey(typed)
			return next, nil
		}
		if m.Mode == ModePrompt {
			next := m.handlePromptKey(typed)
			return next, nil
		}
		if m.Mode == ModeConfirm {
			next := m.handleConfirmKey(typed)
			return next, nil
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleMenuKey(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.Mode {
	case ModePrompt:
		leftPane = m.renderPromptView()
	case ModeConfirm:
		leftPane = views.RenderConfirmPanel(views.ConfirmPanelData{
			TaskID: m.Confirm.TaskID,
			Title:  m.Confirm.Title,
		})
	default:
		leftPane = m.renderMenuView()
	}

	rightPane := m.Output
	if m.Palette.Active {
		rightPane = joinPanes(views.RenderCommandPalette(true, m.Palette.Input), rightPane)
	}
	if m.HelpVisible {
		rightPane = joinPanes(rightPane, m.renderHelpView())
	}

	st := m.Store.Stats()
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("taskbook | tasks: %d | pending: %d", st.Total, st.Pending),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: 1-9 menu | %s command | %s help | %s quit", m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderMenuView() string {
	items := make([]views.MenuItemData, 0, 9)
	for _, entry := range menuEntries() {
		items = append(items, views.MenuItemData{Key: entry.Key, Label: entry.Label})
	}
	return views.RenderMenuPanel(views.MenuPanelData{Items: items})
}
