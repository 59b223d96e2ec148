package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains the prompt session controls
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap creates the default prompt key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Edit: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "edit option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// Help renders the static control hints shown under the prompt
func (k KeyMap) Help() string {
	parts := []string{
		k.Up.Help().Key + "/" + k.Down.Help().Key + " select",
		k.Toggle.Help().Key + " " + k.Toggle.Help().Desc,
		k.Edit.Help().Key + " " + k.Edit.Help().Desc,
		k.Submit.Help().Key + " " + k.Submit.Help().Desc,
		k.Cancel.Help().Key + " " + k.Cancel.Help().Desc,
	}
	return strings.Join(parts, " • ")
}
