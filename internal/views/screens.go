package views

import (
	"fmt"
	"strings"
)

type MenuItemData struct {
	Key   string
	Label string
}

type MenuPanelData struct {
	Items []MenuItemData
}

type TaskItemData struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	CreatedAt   string
	CompletedAt string
}

type TaskListPanelData struct {
	Heading string
	Items   []TaskItemData
	Compact bool
}

type StatsPanelData struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

type PromptPanelData struct {
	Heading   string
	Prompt    string
	InputView string
	Hint      string
	ErrorText string
}

type ConfirmPanelData struct {
	TaskID int
	Title  string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Usage    string
}

func RenderMenuPanel(data MenuPanelData) string {
	var b strings.Builder
	b.WriteString("menu:\n")
	for _, item := range data.Items {
		b.WriteString(fmt.Sprintf("%s. %s\n", item.Key, item.Label))
	}
	b.WriteString("actions: [1-9]choose [/]command [?]help")
	return b.String()
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + ":\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)")
		return b.String()
	}
	for _, item := range data.Items {
		marker := "[ ]"
		line := fmt.Sprintf("%s %d. %s", marker, item.ID, item.Title)
		if item.Completed {
			marker = "[x]"
			line = fmt.Sprintf("%s %d. %s", marker, item.ID, doneStyle.Render(item.Title))
		}
		b.WriteString(line + "\n")
		if data.Compact {
			continue
		}
		if item.Description != "" {
			b.WriteString("    " + item.Description + "\n")
		}
		b.WriteString("    created: " + item.CreatedAt + "\n")
		if item.Completed && item.CompletedAt != "" {
			b.WriteString("    completed: " + item.CompletedAt + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("total: %d\n", data.Total))
	b.WriteString(fmt.Sprintf("completed: %d\n", data.Completed))
	b.WriteString(fmt.Sprintf("pending: %d", data.Pending))
	if data.Total > 0 {
		b.WriteString(fmt.Sprintf("\ncompletion-rate: %.1f%%", data.CompletionRate))
	}
	return b.String()
}

func RenderPromptPanel(data PromptPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + ":\n")
	b.WriteString(data.Prompt + "\n")
	b.WriteString(data.InputView + "\n")
	if data.Hint != "" {
		b.WriteString("hint: " + data.Hint + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString(errorStyle.Render("error: "+data.ErrorText) + "\n")
	}
	b.WriteString("actions: [enter]accept [esc]cancel")
	return b.String()
}

func RenderConfirmPanel(data ConfirmPanelData) string {
	var b strings.Builder
	b.WriteString("delete task:\n")
	b.WriteString(fmt.Sprintf("%d. %s\n", data.TaskID, data.Title))
	b.WriteString("are you sure? [y]es [n]o")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	if data.Usage != "" {
		b.WriteString("\n" + data.Usage)
	}
	return b.String()
}
