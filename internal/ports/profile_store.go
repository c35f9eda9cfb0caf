package ports

import (
	"context"

	"github.com/renato0307/nebula/internal/domain"
)

// ProfileReader reads the user profile
type ProfileReader interface {
	Load(ctx context.Context) (*domain.Profile, error)
}

// ProfileWriter persists the user profile
type ProfileWriter interface {
	Save(ctx context.Context, profile domain.Profile) error
}

// ProfileStore is the composite interface
type ProfileStore interface {
	ProfileReader
	ProfileWriter
	Location() string
}
