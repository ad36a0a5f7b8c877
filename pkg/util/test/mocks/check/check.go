// Package mocks provides testify mocks for the check interfaces.
package mocks

import (
	"context"
	"io/fs"

	"github.com/stretchr/testify/mock"

	"appdoctor/pkg/doctor/check"
)

// MockCheck is a mock implementation of check.Check using testify/mock.
type MockCheck struct {
	mock.Mock
}

// NewMockCheck creates a new MockCheck instance.
func NewMockCheck() *MockCheck {
	return &MockCheck{}
}

func (m *MockCheck) ID() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockCheck) Description() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockCheck) Stage() check.Stage {
	args := m.Called()

	stage, ok := args.Get(0).(check.Stage)
	if !ok {
		return check.StageImmediate
	}

	return stage
}

func (m *MockCheck) Run(ctx context.Context, target *check.Target) (*check.Result, error) {
	args := m.Called(ctx, target)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	result, ok := args.Get(0).(*check.Result)
	if !ok {
		return nil, args.Error(1)
	}

	return result, args.Error(1)
}

// MockFileCheck is a mock implementation of check.FileCheck.
type MockFileCheck struct {
	MockCheck
}

// NewMockFileCheck creates a new MockFileCheck instance.
func NewMockFileCheck() *MockFileCheck {
	return &MockFileCheck{}
}

func (m *MockFileCheck) Extensions() []string {
	args := m.Called()

	exts, ok := args.Get(0).([]string)
	if !ok {
		return nil
	}

	return exts
}

func (m *MockFileCheck) CheckFile(path string, entry fs.DirEntry) error {
	args := m.Called(path, entry)

	return args.Error(0)
}
