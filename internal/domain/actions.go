package domain

// Action represents a secondary action listed in the More panel.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description string
	Name        string
}

// Actions is the canonical registry of secondary actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "edit_profile", Description: "Change username, ID, VIP tier and name color"},
	{Name: "help", Description: "Show keyboard shortcuts"},
	{Name: "quit", Description: "Exit Nebula"},
}

// GetAction returns the action with the given name, or nil if not found
func GetAction(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}
