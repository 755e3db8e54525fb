package app

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) ValidateDocument(ctx context.Context, path, format string, verbose, useColour bool) error {
	args := m.Called(ctx, path, format, verbose, useColour)
	return args.Error(0)
}

func (m *MockManager) WatchValidation(ctx context.Context, path, format string, verbose, useColour bool,
	readyChan chan<- struct{},
) error {
	args := m.Called(ctx, path, format, verbose, useColour, readyChan)
	return args.Error(0)
}

func (m *MockManager) RenderDocument(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	res, _ := args.Get(0).([]byte)
	return res, args.Error(1)
}

func (m *MockManager) RunFixtures(ctx context.Context, manifestPath string, jobs int, format string,
	verbose, useColour bool,
) error {
	args := m.Called(ctx, manifestPath, jobs, format, verbose, useColour)
	return args.Error(0)
}

func (m *MockManager) WriteDefaultConfig(path string, force bool) error {
	args := m.Called(path, force)
	return args.Error(0)
}

// goodDocument is a minimal parameter file overlay; everything it leaves out
// comes from the built-in defaults.
const goodDocument = `
lattice_parameters:
  nticks: 12
  adsorbing: [3]
  desorbing: [8]
  fixed: [6]
  jumping: [[5, 2, 2]]
`

const badDocument = `
box:
  height: -1
`
