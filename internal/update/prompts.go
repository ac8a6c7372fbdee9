package update

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskbook/internal/model"
	"github.com/sandeepkv93/taskbook/internal/views"
)

const (
	fieldTitle          = "title"
	fieldDescription    = "description"
	fieldTaskID         = "task_id"
	fieldNewTitle       = "new_title"
	fieldNewDescription = "new_description"
)

func (m Model) startFlow(action Action, steps []PromptStep) Model {
	m.Mode = ModePrompt
	m.Flow = PromptFlow{Action: action, Steps: steps}
	m.promptInput.SetValue("")
	m.promptInput.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("%s: fill in the prompts", action), IsError: false}
	return m
}

func (m Model) handlePromptKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeMenu
		m.Flow = PromptFlow{}
		m.promptInput.Blur()
		m.Status = StatusBar{Text: "cancelled", IsError: false}
		return m
	case "enter":
		return m.acceptPromptValue(strings.TrimSpace(m.promptInput.Value()))
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) acceptPromptValue(value string) Model {
	step := m.Flow.Steps[m.Flow.Step]

	if step.Required && value == "" {
		m.Flow.Err = "this field cannot be empty"
		return m
	}
	if step.Numeric {
		id, err := strconv.Atoi(value)
		if err != nil || id <= 0 {
			m.Flow.Err = "enter a valid task id"
			m.promptInput.SetValue("")
			return m
		}
		m.Flow.TaskID = id
	} else {
		switch step.Field {
		case fieldTitle, fieldNewTitle:
			if value != "" {
				v := value
				m.Flow.Title = &v
			}
		case fieldDescription, fieldNewDescription:
			if value != "" {
				v := value
				m.Flow.Description = &v
			}
		}
	}

	m.Flow.Err = ""
	m.Flow.Step++
	m.promptInput.SetValue("")
	if m.Flow.Step < len(m.Flow.Steps) {
		return m
	}
	return m.executeFlow()
}

func (m Model) executeFlow() Model {
	flow := m.Flow
	m.Mode = ModeMenu
	m.Flow = PromptFlow{}
	m.promptInput.Blur()

	switch flow.Action {
	case ActionAdd:
		title := ""
		if flow.Title != nil {
			title = *flow.Title
		}
		description := ""
		if flow.Description != nil {
			description = *flow.Description
		}
		task, err := m.Store.Add(title, description)
		if err != nil {
			return m.reportError(err)
		}
		m.Status = StatusBar{Text: fmt.Sprintf("added task %d: %s", task.ID, task.Title), IsError: false}
		return m.refreshOutput()

	case ActionUpdate:
		task, err := m.Store.Update(flow.TaskID, flow.Title, flow.Description)
		if err != nil {
			return m.reportError(err)
		}
		m.Status = StatusBar{Text: fmt.Sprintf("updated task %d: %s", task.ID, task.Title), IsError: false}
		return m.refreshOutput()

	case ActionComplete:
		task, changed, err := m.Store.Complete(flow.TaskID)
		if err != nil {
			return m.reportError(err)
		}
		if !changed {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d is already completed", task.ID), IsError: false}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("completed task %d: %s", task.ID, task.Title), IsError: false}
		return m.refreshOutput()

	case ActionUncomplete:
		task, changed, err := m.Store.Uncomplete(flow.TaskID)
		if err != nil {
			return m.reportError(err)
		}
		if !changed {
			m.Status = StatusBar{Text: fmt.Sprintf("task %d is already pending", task.ID), IsError: false}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("task %d marked pending: %s", task.ID, task.Title), IsError: false}
		return m.refreshOutput()

	case ActionDelete:
		task, err := m.Store.Get(flow.TaskID)
		if err != nil {
			return m.reportError(err)
		}
		m.Mode = ModeConfirm
		m.Confirm = ConfirmState{TaskID: task.ID, Title: task.Title}
		m.Status = StatusBar{Text: "confirm deletion", IsError: false}
		return m
	}
	return m
}

func (m Model) reportError(err error) Model {
	m.LastError = err
	text := err.Error()
	if errors.Is(err, model.ErrEmptyTitle) {
		text = "task title cannot be empty"
	}
	m.Status = StatusBar{Text: text, IsError: true}
	return m
}

func (m Model) renderPromptView() string {
	if m.Flow.Step >= len(m.Flow.Steps) {
		return ""
	}
	step := m.Flow.Steps[m.Flow.Step]
	return views.RenderPromptPanel(views.PromptPanelData{
		Heading:   string(m.Flow.Action),
		Prompt:    step.Prompt,
		InputView: m.promptInput.View(),
		Hint:      step.Hint,
		ErrorText: m.Flow.Err,
	})
}
