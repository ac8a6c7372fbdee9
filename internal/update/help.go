package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/taskbook/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const usageMarkdown = `# taskbook

Pick a menu action with its number, answer the prompts, done.
Tasks are saved to the task file after every change.

## Palette commands

- ` + "`/add <title>`" + ` add a task
- ` + "`/done <id>`" + ` / ` + "`/undo <id>`" + ` complete / revert
- ` + "`/rm <id>`" + ` delete without the confirmation prompt
- ` + "`/list`" + `, ` + "`/pending`" + `, ` + "`/stats`" + `
`

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.globalBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		Usage: views.RenderMarkdown(usageMarkdown),
	})
}

func (m Model) globalBindings() []KeyBinding {
	out := make([]KeyBinding, 0, 12)
	for _, entry := range menuEntries() {
		out = append(out, KeyBinding{Key: entry.Key, Action: entry.Label})
	}
	out = append(out,
		KeyBinding{Key: m.Keys.Palette, Action: "open command palette"},
		KeyBinding{Key: m.Keys.Help, Action: "toggle help panel"},
		KeyBinding{Key: m.Keys.Quit, Action: "quit"},
	)
	return out
}

func (m Model) helpBindings() []key.Binding {
	bindings := m.globalBindings()
	out := make([]key.Binding, 0, len(bindings))
	for _, kb := range bindings {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
