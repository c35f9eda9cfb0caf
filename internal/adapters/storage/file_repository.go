package storage

import (
	"context"
	"fmt"

	"github.com/renato0307/nebula/internal/config"
	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ports"
)

// FileRepository implements ports.ProfileStore on top of user.cfg
type FileRepository struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.ProfileStore = (*FileRepository)(nil)

// NewFileRepository creates a repository for the config file at path
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: config.ExpandPath(path)}
}

// Load reads the profile, returning defaults when the file does not exist
func (r *FileRepository) Load(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	profile, err := config.LoadProfile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// Save writes the profile keys, keeping unrelated keys in the file
func (r *FileRepository) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Logger.Debug("Saving profile", "path", r.path, "username", profile.Username)
	if err := config.SaveProfile(r.path, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Location returns the config file path
func (r *FileRepository) Location() string {
	return r.path
}
