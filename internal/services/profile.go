package services

import (
	"context"
	"fmt"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
	"github.com/renato0307/nebula/internal/ports"
)

// ProfileService loads and updates the user profile shown in the dashboard
type ProfileService struct {
	store ports.ProfileStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(store ports.ProfileStore) *ProfileService {
	return &ProfileService{
		store: store,
	}
}

// Load returns the current profile.
// On failure it still returns the default profile alongside the error, so
// the dashboard can render something.
func (s *ProfileService) Load(ctx context.Context) (domain.Profile, error) {
	profile, err := s.store.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load profile", "location", s.store.Location(), "error", err)
		return domain.DefaultProfile(), err
	}

	if profile.Tier() != domain.VIPTier(profile.VIPLevel) {
		logging.Logger.Debug("VIP level out of range, using default tier",
			"viplvl", profile.VIPLevel,
			"tier", profile.Tier().Name())
	}
	return *profile, nil
}

// Save validates and persists the profile
func (s *ProfileService) Save(ctx context.Context, profile domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	logging.Logger.Info("Updating profile",
		"username", profile.Username,
		"viplvl", profile.VIPLevel,
		"colorname", profile.ColorName)

	if err := s.store.Save(ctx, profile); err != nil {
		logging.Logger.Error("Failed to save profile", "error", err)
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Wallet returns the currency counters.
// Balances are not tracked yet, so both are zero.
func (s *ProfileService) Wallet(ctx context.Context) domain.Wallet {
	return domain.Wallet{}
}

// Location returns where the profile is stored
func (s *ProfileService) Location() string {
	return s.store.Location()
}
