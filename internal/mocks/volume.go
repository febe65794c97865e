package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/kchaow/filemanager"
)

// MockVolumePlatform implements filemanager.VolumePlatform for testing across packages
type MockVolumePlatform struct {
	mock.Mock
}

func (m *MockVolumePlatform) Roots() ([]string, error) {
	args := m.Called()

	// Handle nil returns
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVolumePlatform) Label(root string) string {
	args := m.Called(root)
	return args.String(0)
}

func (m *MockVolumePlatform) FSType(root string) (string, error) {
	args := m.Called(root)
	return args.String(0), args.Error(1)
}

func (m *MockVolumePlatform) TotalBytes(root string) (uint64, error) {
	args := m.Called(root)

	// Handle function return types (for per-root sizes)
	if fn, ok := args.Get(0).(func(string) uint64); ok {
		return fn(root), args.Error(1)
	}
	return args.Get(0).(uint64), args.Error(1)
}

var _ filemanager.VolumePlatform = (*MockVolumePlatform)(nil)
