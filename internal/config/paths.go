package config

import (
	"os"
	"path/filepath"
)

// Default locations, relative to the working directory
const (
	DefaultAssetsDir  = "Images"
	DefaultConfigPath = "Config/user.cfg"
)

// GetConfigPath returns $NEBULA_CONFIG or Config/user.cfg
func GetConfigPath() string {
	if p := os.Getenv("NEBULA_CONFIG"); p != "" {
		return ExpandPath(p)
	}
	return DefaultConfigPath
}

// GetAssetsDir returns $NEBULA_ASSETS or Images
func GetAssetsDir() string {
	if p := os.Getenv("NEBULA_ASSETS"); p != "" {
		return ExpandPath(p)
	}
	return DefaultAssetsDir
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
