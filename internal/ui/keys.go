package ui

import "github.com/charmbracelet/bubbles/key"

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	EditProfile key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// NavigationKeys defines key bindings for the sidebar
type NavigationKeys struct {
	Down        key.Binding
	QuickSelect key.Binding
	Select      key.Binding
	Up          key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			EditProfile: buildBinding("edit_profile"),
			ForceQuit:   buildBinding("force_quit"),
			Help:        buildBinding("help"),
			Quit:        buildBinding("quit"),
		},
		Navigation: NavigationKeys{
			Down:        buildBinding("down"),
			QuickSelect: buildBinding("quick_select"),
			Select:      buildBinding("select"),
			Up:          buildBinding("up"),
		},
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up,
		k.Navigation.Down,
		k.Navigation.Select,
		k.Application.EditProfile,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns all bindings grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down, k.Navigation.Select, k.Navigation.QuickSelect},
		{k.Application.EditProfile, k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
