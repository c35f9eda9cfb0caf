package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/services"
)

// ProfileFormResult contains the result of the edit
type ProfileFormResult struct {
	Cancelled bool
	Error     error
	Profile   domain.Profile
}

// ProfileForm is a Bubble Tea component for editing the profile
type ProfileForm struct {
	Completed      bool
	form           *huh.Form
	profileService *services.ProfileService
	result         ProfileFormResult
}

// NewProfileForm creates a form prefilled with current
func NewProfileForm(profileService *services.ProfileService, current domain.Profile) *ProfileForm {
	pf := &ProfileForm{
		profileService: profileService,
		result: ProfileFormResult{
			Profile: current,
		},
	}
	pf.result.Profile.VIPLevel = int(current.Tier())

	tierOptions := make([]huh.Option[int], 0, len(domain.AllTiers))
	for _, tier := range domain.AllTiers {
		tierOptions = append(tierOptions, huh.NewOption(tier.Name(), int(tier)))
	}

	colorOptions := []huh.Option[string]{
		huh.NewOption("Default", domain.DefaultColorName),
		huh.NewOption("Rainbow (animated)", domain.RainbowColorName),
	}
	if c := current.ColorName; c != domain.DefaultColorName && c != domain.RainbowColorName {
		colorOptions = append(colorOptions, huh.NewOption(fmt.Sprintf("Keep %q", c), c))
	}

	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&pf.result.Profile.Username).
				Validate(singleLine("username")),
			huh.NewInput().
				Title("ID").
				Value(&pf.result.Profile.ID).
				Validate(singleLine("id")),
			huh.NewSelect[int]().
				Title("VIP tier").
				Options(tierOptions...).
				Value(&pf.result.Profile.VIPLevel),
			huh.NewSelect[string]().
				Title("Name color").
				Options(colorOptions...).
				Value(&pf.result.Profile.ColorName),
		),
	)

	return pf
}

func singleLine(field string) func(string) error {
	return func(s string) error {
		p := domain.Profile{Username: s, ID: s, VIPLevel: int(domain.TierVIP)}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s must be a single line", field)
		}
		return nil
	}
}

func (pf *ProfileForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *ProfileForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			pf.result.Cancelled = true
			pf.Completed = true
			return pf, nil
		}
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted {
		pf.Completed = true
		if err := pf.save(); err != nil {
			logging.Logger.Error("Failed to save profile", "error", err)
			pf.result.Error = err
		}
		return pf, nil
	}

	return pf, cmd
}

func (pf *ProfileForm) View() string {
	if pf.form != nil {
		return pf.form.View()
	}
	return ""
}

// Result returns the form result
func (pf *ProfileForm) Result() ProfileFormResult {
	return pf.result
}

func (pf *ProfileForm) save() error {
	if pf.profileService == nil {
		return nil
	}
	return pf.profileService.Save(context.Background(), pf.result.Profile)
}
