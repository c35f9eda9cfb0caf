package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and prepends the application header
// with a title to its view.
//
// Usage:
//
//	form := NewProfileForm(...)
//	dialog := NewDialog("Edit Profile", form, devMode)
//	dialog.Update(msg)  // Delegates to form.Update(msg)
//	dialog.View()       // Returns header + form.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view
func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + "\n" + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}
