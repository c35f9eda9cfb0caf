package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/nebula/internal/config"
	"github.com/renato0307/nebula/internal/logging"
)

// ConfigCmd groups config file commands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample user config file"`
}

// ConfigInitCmd writes config.SampleProfile to the config path
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing file"`
}

// Run executes the init command
func (c *ConfigInitCmd) Run(cli *CLI) error {
	path := cli.Container.ConfigPath
	if exists(path) && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.SampleProfile()), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logging.Logger.Info("Sample config written", "path", path)
	fmt.Printf("Wrote %s\n", path)
	return nil
}
