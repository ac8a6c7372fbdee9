package update

import (
	"strings"

	"github.com/sandeepkv93/taskbook/internal/model"
	"github.com/sandeepkv93/taskbook/internal/views"
)

const displayTimeLayout = "2006-01-02 15:04"

func taskItems(tasks []model.Task) []views.TaskItemData {
	out := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		item := views.TaskItemData{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Format(displayTimeLayout),
		}
		if t.CompletedAt != nil {
			item.CompletedAt = t.CompletedAt.Format(displayTimeLayout)
		}
		out = append(out, item)
	}
	return out
}

func joinPanes(panes ...string) string {
	parts := make([]string, 0, len(panes))
	for _, p := range panes {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}
