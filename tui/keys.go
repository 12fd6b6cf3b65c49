package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"taskboard/internal/infrastructure/config"
)

// keyMap holds the board screen bindings. Forms use fixed keys.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchPane  key.Binding
	Select      key.Binding
	AddTask     key.Binding
	EditTask    key.Binding
	DeleteTask  key.Binding
	AdvanceTask key.Binding
	NewBoard    key.Binding
	RenameBoard key.Binding
	DeleteBoard key.Binding
	Refresh     key.Binding
	Auth        key.Binding
	Quit        key.Binding
}

var keys keyMap

func init() {
	InitKeybindings(config.NewLoaderAt("", "").Defaults())
}

// InitKeybindings initializes the keybindings from config
func InitKeybindings(cfg *config.Config) {
	kb := cfg.Keybindings
	keys = keyMap{
		Up:          binding(kb.Up, "up"),
		Down:        binding(kb.Down, "down"),
		Left:        binding(kb.Left, "left"),
		Right:       binding(kb.Right, "right"),
		SwitchPane:  binding(kb.SwitchPane, "switch pane"),
		Select:      binding(kb.Select, "select"),
		AddTask:     binding(kb.AddTask, "add task"),
		EditTask:    binding(kb.EditTask, "edit"),
		DeleteTask:  binding(kb.DeleteTask, "delete"),
		AdvanceTask: binding(kb.AdvanceTask, "move"),
		NewBoard:    binding(kb.NewBoard, "new board"),
		RenameBoard: binding(kb.RenameBoard, "rename board"),
		DeleteBoard: binding(kb.DeleteBoard, "delete board"),
		Refresh:     binding(kb.Refresh, "refresh"),
		Auth:        binding(kb.Auth, "login"),
		Quit:        binding(kb.Quit, "quit"),
	}
}

func binding(keysList []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keysList...),
		key.WithHelp(strings.Join(keysList, "/"), desc),
	)
}

// helpEntry renders "keys (desc)" for the help line
func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " (" + h.Desc + ")"
}
