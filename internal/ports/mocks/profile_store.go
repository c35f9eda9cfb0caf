package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/renato0307/nebula/internal/domain"
)

// MockProfileStore is a testify mock for ports.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

// NewMockProfileStore creates a mock that asserts its expectations on cleanup
func NewMockProfileStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileStore {
	m := &MockProfileStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileStore) Load(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *MockProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) Location() string {
	args := m.Called()
	return args.String(0)
}
