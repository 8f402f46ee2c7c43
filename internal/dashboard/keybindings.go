package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultQuitKey exits the dashboard unless the config picks another one.
const DefaultQuitKey = "q"

// KeyQuitAlt always quits, whatever the configured key is.
const KeyQuitAlt = "ctrl+c"

// KeyMap holds the dashboard's key bindings.
type KeyMap struct {
	Quit key.Binding
}

// NewKeyMap binds quitKey and ctrl+c to quit.
func NewKeyMap(quitKey string) KeyMap {
	if quitKey == "" {
		quitKey = DefaultQuitKey
	}
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(quitKey, KeyQuitAlt),
			key.WithHelp(quitKey, "quit"),
		),
	}
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled.
// Everything but quit is ignored.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.state = StateTerminated
		return true, tea.Quit
	}
	return false, nil
}
