package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskbook/internal/views"
)

func (m Model) handleMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	for _, entry := range menuEntries() {
		if msg.String() == entry.Key {
			if entry.Action == ActionQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.startAction(entry.Action), nil
		}
	}
	return m, nil
}

func (m Model) startAction(action Action) Model {
	switch action {
	case ActionAdd:
		return m.startFlow(action, []PromptStep{
			{Field: fieldTitle, Prompt: "enter task title", Required: true},
			{Field: fieldDescription, Prompt: "enter task description", Hint: "optional, enter to skip"},
		})
	case ActionViewAll:
		return m.showTasks(true)
	case ActionViewPending:
		return m.showTasks(false)
	case ActionUpdate:
		return m.startFlow(action, []PromptStep{
			{Field: fieldTaskID, Prompt: "enter task id to update", Numeric: true, Required: true},
			{Field: fieldNewTitle, Prompt: "enter new title", Hint: "enter to keep current"},
			{Field: fieldNewDescription, Prompt: "enter new description", Hint: "enter to keep current"},
		})
	case ActionComplete, ActionUncomplete, ActionDelete:
		return m.startFlow(action, []PromptStep{
			{Field: fieldTaskID, Prompt: fmt.Sprintf("enter task id to %s", action), Numeric: true, Required: true},
		})
	case ActionStats:
		return m.showStats()
	}
	return m
}

func (m Model) showTasks(includeCompleted bool) Model {
	tasks := m.Store.List(includeCompleted)
	heading := "all tasks"
	if !includeCompleted {
		heading = "pending tasks"
	}
	m.Output = views.RenderTaskListPanel(views.TaskListPanelData{
		Heading: heading,
		Items:   taskItems(tasks),
		Compact: m.Compact,
	})
	m.Status = StatusBar{Text: fmt.Sprintf("%d task(s) listed", len(tasks)), IsError: false}
	return m
}

func (m Model) showStats() Model {
	st := m.Store.Stats()
	rate := 0.0
	if st.Total > 0 {
		rate = float64(st.Completed) / float64(st.Total) * 100
	}
	m.Output = views.RenderStatsPanel(views.StatsPanelData{
		Total:          st.Total,
		Completed:      st.Completed,
		Pending:        st.Pending,
		CompletionRate: rate,
	})
	m.Status = StatusBar{Text: "statistics refreshed", IsError: false}
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		return m.finishDelete(true)
	case "n", "N", "esc", "enter":
		return m.finishDelete(false)
	}
	return m
}

func (m Model) finishDelete(confirmed bool) Model {
	id := m.Confirm.TaskID
	title := m.Confirm.Title
	m.Mode = ModeMenu
	m.Confirm = ConfirmState{}

	deleted, err := m.Store.Delete(id, confirmed)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if !deleted {
		m.Status = StatusBar{Text: "deletion cancelled", IsError: false}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted task %d: %s", id, title), IsError: false}
	m = m.refreshOutput()
	return m
}

// refreshOutput re-renders the listing pane after a mutation so stale
// rows are not left on screen.
func (m Model) refreshOutput() Model {
	if m.Output == "" {
		return m
	}
	keep := m.Status
	m = m.showTasks(true)
	m.Status = keep
	return m
}
