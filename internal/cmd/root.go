package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"NEBULA_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"NEBULA_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"NEBULA_MAX_LOG_FILES"`
	Config      string           `help:"Path to the user config file (default Config/user.cfg)" env:"NEBULA_CONFIG"`
	Assets      string           `help:"Directory holding the dashboard images (default Images)" env:"NEBULA_ASSETS"`

	Run     RunCmd     `cmd:"" help:"Start the nebula dashboard (default)" default:"1"`
	Profile ProfileCmd `cmd:"" help:"Inspect the user profile"`
	Setup   ConfigCmd  `cmd:"" name:"config" help:"Manage the user config file"`
	Cycle   CycleCmd   `cmd:"" help:"Print the rainbow color sequence"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires the container
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "path", logFilePath)
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(c.Config, c.Assets)
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool          `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay time.Duration `help:"How long error messages stay on screen" default:"10s"`
	RainbowStep     int           `help:"Channel change per rainbow tick (1-255)" default:"1" env:"NEBULA_RAINBOW_STEP"`
	TickInterval    time.Duration `help:"Delay between rainbow ticks" default:"10ms" env:"NEBULA_TICK_INTERVAL"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting nebula TUI",
		"config", cli.Container.ConfigPath,
		"assets", cli.Container.AssetsDir)

	model, err := ui.NewModel(
		cli.Container.ProfileService,
		cli.Container.ImageStore,
		ui.ModelConfig{
			DevMode:         r.Dev,
			ErrorClearDelay: r.ErrorClearDelay,
			RainbowStep:     r.RainbowStep,
			TickInterval:    r.TickInterval,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// exists reports whether path exists
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
