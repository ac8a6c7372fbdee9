package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskbook/internal/commands"
	"github.com/sandeepkv93/taskbook/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, addErr := m.Store.Add(a.Title, "")
			if addErr != nil {
				return commands.Result{}, addErr
			}
			return commands.Result{Message: fmt.Sprintf("added task %d: %s", task.ID, task.Title)}, nil
		},
		Done: func(a commands.TaskIDArgs) (commands.Result, error) {
			task, changed, doneErr := m.Store.Complete(a.ID)
			if doneErr != nil {
				return commands.Result{}, doneErr
			}
			if !changed {
				return commands.Result{Message: fmt.Sprintf("task %d is already completed", task.ID)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("completed task %d: %s", task.ID, task.Title)}, nil
		},
		Undo: func(a commands.TaskIDArgs) (commands.Result, error) {
			task, changed, undoErr := m.Store.Uncomplete(a.ID)
			if undoErr != nil {
				return commands.Result{}, undoErr
			}
			if !changed {
				return commands.Result{Message: fmt.Sprintf("task %d is already pending", task.ID)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("task %d marked pending: %s", task.ID, task.Title)}, nil
		},
		Remove: func(a commands.TaskIDArgs) (commands.Result, error) {
			task, getErr := m.Store.Get(a.ID)
			if getErr != nil {
				return commands.Result{}, getErr
			}
			// palette removal counts as an explicit confirmation
			if _, delErr := m.Store.Delete(a.ID, true); delErr != nil {
				return commands.Result{}, delErr
			}
			return commands.Result{Message: fmt.Sprintf("deleted task %d: %s", task.ID, task.Title)}, nil
		},
		List: func() (commands.Result, error) {
			m.Output = views.RenderTaskListPanel(views.TaskListPanelData{
				Heading: "all tasks",
				Items:   taskItems(m.Store.List(true)),
				Compact: m.Compact,
			})
			return commands.Result{Message: "listing all tasks"}, nil
		},
		Pending: func() (commands.Result, error) {
			m.Output = views.RenderTaskListPanel(views.TaskListPanelData{
				Heading: "pending tasks",
				Items:   taskItems(m.Store.List(false)),
				Compact: m.Compact,
			})
			return commands.Result{Message: "listing pending tasks"}, nil
		},
		Stats: func() (commands.Result, error) {
			next := m.showStats()
			m.Output = next.Output
			return commands.Result{Message: "statistics refreshed"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
