package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/renato0307/nebula/internal/domain"
	"github.com/renato0307/nebula/internal/logging"
)

// Recognized keys in the [DEFAULT] section of user.cfg
const (
	KeyColorName = "colorname"
	KeyID        = "id"
	KeyUsername  = "username"
	KeyVIPLevel  = "viplvl"
)

// loadOptions keeps values verbatim: no inline comment stripping and no
// quote removal, and key names are matched case-insensitively
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	InsensitiveKeys:         true,
	PreserveSurroundedQuote: true,
}

// LoadProfile reads the user profile from a flat key-value file.
// A missing file is not an error: the default profile is returned.
// Keys missing from the file take their defaults; keys present with an
// empty value stay empty.
func LoadProfile(path string) (*domain.Profile, error) {
	profile := domain.DefaultProfile()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Logger.Info("User config not found, using defaults", "path", path)
			return &profile, nil
		}
		return nil, fmt.Errorf("failed to stat user config: %w", err)
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("invalid user config %s: %w", path, err)
	}

	section := file.Section(ini.DefaultSection)

	if section.HasKey(KeyVIPLevel) {
		raw := section.Key(KeyVIPLevel).String()
		level, err := strconv.Atoi(raw)
		if err != nil {
			logging.Logger.Warn("Invalid viplvl, falling back to default",
				"value", raw,
				"default", domain.DefaultVIPLevel)
		} else {
			profile.VIPLevel = level
		}
	}
	if section.HasKey(KeyID) {
		profile.ID = section.Key(KeyID).String()
	}
	if section.HasKey(KeyUsername) {
		profile.Username = section.Key(KeyUsername).String()
	}
	if section.HasKey(KeyColorName) {
		profile.ColorName = section.Key(KeyColorName).String()
	}

	logging.Logger.Debug("User config loaded",
		"path", path,
		"username", profile.Username,
		"viplvl", profile.VIPLevel,
		"colorname", profile.ColorName)

	return &profile, nil
}

// SaveProfile writes the profile keys into the [DEFAULT] section of path.
// Other keys and sections already in the file are kept.
func SaveProfile(path string, profile domain.Profile) error {
	file := ini.Empty(loadOptions)
	if _, err := os.Stat(path); err == nil {
		loaded, err := ini.LoadSources(loadOptions, path)
		if err != nil {
			return fmt.Errorf("invalid user config %s: %w", path, err)
		}
		file = loaded
	}

	section := file.Section(ini.DefaultSection)
	section.Key(KeyVIPLevel).SetValue(strconv.Itoa(profile.VIPLevel))
	section.Key(KeyID).SetValue(profile.ID)
	section.Key(KeyUsername).SetValue(profile.Username)
	section.Key(KeyColorName).SetValue(profile.ColorName)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Readers of user.cfg expect an explicit [DEFAULT] header
	ini.DefaultHeader = true
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	logging.Logger.Info("User config saved", "path", path)
	return nil
}

// SampleProfile returns an example user.cfg
func SampleProfile() string {
	return "[DEFAULT]\n" +
		KeyVIPLevel + " = 2\n" +
		KeyID + " = 256\n" +
		KeyUsername + " = Player\n" +
		"; set to rainbow to animate the username color\n" +
		KeyColorName + " = rainbow\n"
}
