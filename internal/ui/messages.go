package ui

import "github.com/renato0307/nebula/internal/domain"

// Action messages. Each message type represents a specific action the user
// wants to perform; Model handles them in updateDashboard().

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// EditProfileMsg requests showing the profile form
type EditProfileMsg struct{}

// SelectNavMsg requests opening the panel of a sidebar button
type SelectNavMsg struct {
	Item domain.NavItem
}
