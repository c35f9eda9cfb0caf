package mocks

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/mock"
)

// MockImageRenderer is a testify mock for ports.ImageRenderer
type MockImageRenderer struct {
	mock.Mock
}

// NewMockImageRenderer creates a mock that asserts its expectations on cleanup
func NewMockImageRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageRenderer {
	m := &MockImageRenderer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockImageRenderer) Preload(ctx context.Context, names ...string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

func (m *MockImageRenderer) Render(name string, width, height int, bg lipgloss.Color) (string, error) {
	args := m.Called(name, width, height, bg)
	return args.String(0), args.Error(1)
}
