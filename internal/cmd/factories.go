package cmd

import (
	adapterimages "github.com/renato0307/nebula/internal/adapters/images"
	adapterstorage "github.com/renato0307/nebula/internal/adapters/storage"
	"github.com/renato0307/nebula/internal/config"
	"github.com/renato0307/nebula/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	AssetsDir  string
	ConfigPath string

	// Adapters
	ImageStore *adapterimages.Store

	// Services
	ProfileService *services.ProfileService
}

// NewContainer creates a new Container with all dependencies wired.
// Empty paths fall back to the environment, then to the defaults.
func NewContainer(configPath, assetsDir string) *Container {
	if configPath == "" {
		configPath = config.GetConfigPath()
	}
	if assetsDir == "" {
		assetsDir = config.GetAssetsDir()
	}
	configPath = config.ExpandPath(configPath)
	assetsDir = config.ExpandPath(assetsDir)

	profileRepo := adapterstorage.NewFileRepository(configPath)

	return &Container{
		AssetsDir:      assetsDir,
		ConfigPath:     configPath,
		ImageStore:     adapterimages.NewStore(assetsDir),
		ProfileService: services.NewProfileService(profileRepo),
	}
}
