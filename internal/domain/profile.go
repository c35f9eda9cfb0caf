package domain

import (
	"fmt"
	"strings"
)

// Profile defaults, used for any key missing from the user configuration
const (
	DefaultColorName = ""
	DefaultID        = "256"
	DefaultUsername  = "Null"
	DefaultVIPLevel  = 1
)

// RainbowColorName is the only colorname value that animates the username
const RainbowColorName = "rainbow"

// Profile holds the user-specific display data
type Profile struct {
	ColorName string
	ID        string
	Username  string
	VIPLevel  int
}

// DefaultProfile returns the profile shown when no configuration exists
func DefaultProfile() Profile {
	return Profile{
		ColorName: DefaultColorName,
		ID:        DefaultID,
		Username:  DefaultUsername,
		VIPLevel:  DefaultVIPLevel,
	}
}

// Tier returns the VIP tier for the profile's level
func (p Profile) Tier() VIPTier {
	return ParseVIPTier(p.VIPLevel)
}

// Rainbow reports whether the username color animation is enabled.
// Matching is exact: "Rainbow" or " rainbow" leave the static style.
func (p Profile) Rainbow() bool {
	return p.ColorName == RainbowColorName
}

// IDLabel returns the text shown under the username
func (p Profile) IDLabel() string {
	return "ID: " + p.ID
}

// Validate checks the values a user can edit
func (p Profile) Validate() error {
	if strings.ContainsAny(p.Username, "\r\n") {
		return fmt.Errorf("%w: username must be a single line", ErrInvalidProfile)
	}
	if strings.ContainsAny(p.ID, "\r\n") {
		return fmt.Errorf("%w: id must be a single line", ErrInvalidProfile)
	}
	if p.VIPLevel < int(TierVIP) || p.VIPLevel > int(TierMVPPlus) {
		return fmt.Errorf("%w: viplvl must be between %d and %d", ErrInvalidProfile, TierVIP, TierMVPPlus)
	}
	return nil
}

// VIPTier is the badge level shown in the profile panel
type VIPTier int

const (
	TierVIP VIPTier = iota + 1
	TierVIPPlus
	TierMVP
	TierMVPPlus
)

// AllTiers lists the tiers in ascending order
var AllTiers = []VIPTier{TierVIP, TierVIPPlus, TierMVP, TierMVPPlus}

// ParseVIPTier maps a configured level to a tier.
// Anything outside 1..4 falls back to TierVIP.
func ParseVIPTier(level int) VIPTier {
	tier := VIPTier(level)
	if tier < TierVIP || tier > TierMVPPlus {
		return TierVIP
	}
	return tier
}

// Name returns the badge text
func (t VIPTier) Name() string {
	switch t {
	case TierVIPPlus:
		return "VIP+"
	case TierMVP:
		return "MVP"
	case TierMVPPlus:
		return "MVP+"
	default:
		return "VIP"
	}
}

// Image returns the badge image file name
func (t VIPTier) Image() string {
	switch t {
	case TierVIPPlus:
		return "vipplus.png"
	case TierMVP:
		return "mvp.png"
	case TierMVPPlus:
		return "mvpplus.png"
	default:
		return "vip.png"
	}
}

// Wallet holds the two currency counters
type Wallet struct {
	BCube int
	Gold  int
}
