package ui

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Msg      tea.Msg // Message sent when the key is pressed (nil if handled inline)
	Name     string
}

// AllKeyDefinitions contains all key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "edit_profile", Defaults: []string{"e"}, Help: "edit profile", Msg: EditProfileMsg{}},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Msg: QuitMsg{}},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Msg: QuitMsg{}},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next button"},
	{Name: "quick_select", Defaults: []string{"1", "2", "3", "4", "5"}, Help: "open panel by number"},
	{Name: "select", Defaults: []string{"enter", " "}, Help: "open focused panel"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous button"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// buildBinding creates a key.Binding from its definition
func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	helpKeys := strings.Join(def.Defaults, "/")
	if name == "quick_select" {
		helpKeys = def.Defaults[0] + "-" + def.Defaults[len(def.Defaults)-1]
	}
	if name == "select" {
		helpKeys = "enter/space"
	}

	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(helpKeys, def.Help),
	)
}
