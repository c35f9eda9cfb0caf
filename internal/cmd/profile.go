package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/nebula/internal/domain"
)

// ProfileCmd groups profile commands
type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the profile the dashboard would display" default:"1"`
}

// ProfileShowCmd prints the resolved profile
type ProfileShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`

	out io.Writer
}

// profileView is the printed form of a profile
type profileView struct {
	ColorName string `json:"colorname"`
	ID        string `json:"id"`
	Location  string `json:"location"`
	Rainbow   bool   `json:"rainbow"`
	Tier      string `json:"tier"`
	Username  string `json:"username"`
	VIPLevel  int    `json:"viplvl"`
}

// Run executes the show command
func (p *ProfileShowCmd) Run(cli *CLI) error {
	profile, err := cli.Container.ProfileService.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	return p.print(newProfileView(profile, cli.Container.ProfileService.Location()))
}

func newProfileView(profile domain.Profile, location string) profileView {
	return profileView{
		ColorName: profile.ColorName,
		ID:        profile.ID,
		Location:  location,
		Rainbow:   profile.Rainbow(),
		Tier:      profile.Tier().Name(),
		Username:  profile.Username,
		VIPLevel:  profile.VIPLevel,
	}
}

func (p *ProfileShowCmd) print(view profileView) error {
	out := p.out
	if out == nil {
		out = os.Stdout
	}

	if p.Format == "json" {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Config file:\t%s\n", view.Location)
	fmt.Fprintf(w, "Username:\t%s\n", view.Username)
	fmt.Fprintf(w, "ID:\t%s\n", view.ID)
	fmt.Fprintf(w, "VIP level:\t%d (%s)\n", view.VIPLevel, view.Tier)
	fmt.Fprintf(w, "Color name:\t%q\n", view.ColorName)
	fmt.Fprintf(w, "Rainbow:\t%t\n", view.Rainbow)
	return w.Flush()
}
