package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/taskbook/internal/store"
)

type Mode string

const (
	ModeMenu    Mode = "menu"
	ModePrompt  Mode = "prompt"
	ModeConfirm Mode = "confirm"
)

type Action string

const (
	ActionAdd         Action = "add"
	ActionViewAll     Action = "view_all"
	ActionViewPending Action = "view_pending"
	ActionUpdate      Action = "update"
	ActionComplete    Action = "complete"
	ActionUncomplete  Action = "uncomplete"
	ActionDelete      Action = "delete"
	ActionStats       Action = "stats"
	ActionQuit        Action = "quit"
)

type MenuEntry struct {
	Key    string
	Action Action
	Label  string
}

func menuEntries() []MenuEntry {
	return []MenuEntry{
		{Key: "1", Action: ActionAdd, Label: "add task"},
		{Key: "2", Action: ActionViewAll, Label: "view all tasks"},
		{Key: "3", Action: ActionViewPending, Label: "view pending tasks"},
		{Key: "4", Action: ActionUpdate, Label: "update task"},
		{Key: "5", Action: ActionComplete, Label: "complete task"},
		{Key: "6", Action: ActionUncomplete, Label: "uncomplete task"},
		{Key: "7", Action: ActionDelete, Label: "delete task"},
		{Key: "8", Action: ActionStats, Label: "view statistics"},
		{Key: "9", Action: ActionQuit, Label: "exit"},
	}
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Help    string
	Quit    string
}

// One field collected during a prompt flow. Required fields re-prompt on
// empty input; numeric fields re-prompt until they parse as a task id.
type PromptStep struct {
	Field    string
	Prompt   string
	Hint     string
	Required bool
	Numeric  bool
}

type PromptFlow struct {
	Action      Action
	Steps       []PromptStep
	Step        int
	TaskID      int
	Title       *string
	Description *string
	Err         string
}

type ConfirmState struct {
	TaskID int
	Title  string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type Model struct {
	Store       *store.TaskStore
	Mode        Mode
	Flow        PromptFlow
	Confirm     ConfirmState
	Palette     CommandPaletteState
	Output      string
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Compact     bool
	Quitting    bool
	LastError   error

	promptInput  textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

func NewModel(s *store.TaskStore) Model {
	m := Model{
		Store: s,
		Mode:  ModeMenu,
		Keys: GlobalKeyMap{
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initBubbleComponents()
	return m
}

func NewModelWithConfig(s *store.TaskStore, cfg RuntimeConfig) Model {
	m := NewModel(s)
	m.Compact = cfg.CompactList
	return m
}

func (m *Model) initBubbleComponents() {
	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.CharLimit = 256
	m.promptInput = prompt

	command := textinput.New()
	command.Prompt = "/"
	command.CharLimit = 256
	m.commandInput = command

	m.helpModel = help.New()
}
