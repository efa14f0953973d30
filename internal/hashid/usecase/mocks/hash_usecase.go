// Package mocks provides mock implementations of hash use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// MockHashUseCase is a mock implementation of HashUseCase for testing.
type MockHashUseCase struct {
	mock.Mock
}

// NewMockHashUseCase creates a mock that asserts its expectations on test cleanup.
func NewMockHashUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHashUseCase {
	m := &MockHashUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Profile mocks the Profile method of HashUseCase.
func (m *MockHashUseCase) Profile(ctx context.Context) *hashidDomain.ProfileInfo {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*hashidDomain.ProfileInfo)
}

// Generate mocks the Generate method of HashUseCase.
func (m *MockHashUseCase) Generate(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// GenerateRandom mocks the GenerateRandom method of HashUseCase.
func (m *MockHashUseCase) GenerateRandom(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// GenerateCrc mocks the GenerateCrc method of HashUseCase.
func (m *MockHashUseCase) GenerateCrc(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// GenerateSelfValidate mocks the GenerateSelfValidate method of HashUseCase.
func (m *MockHashUseCase) GenerateSelfValidate(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// GenerateRandomSelfValidate mocks the GenerateRandomSelfValidate method of HashUseCase.
func (m *MockHashUseCase) GenerateRandomSelfValidate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of HashUseCase.
func (m *MockHashUseCase) Verify(ctx context.Context, data []byte, hash string) (bool, error) {
	args := m.Called(ctx, data, hash)
	return args.Bool(0), args.Error(1)
}

// VerifySelfValidate mocks the VerifySelfValidate method of HashUseCase.
func (m *MockHashUseCase) VerifySelfValidate(ctx context.Context, hash string) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

// Inspect mocks the Inspect method of HashUseCase.
func (m *MockHashUseCase) Inspect(ctx context.Context, hash string) (*hashidDomain.Inspection, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hashidDomain.Inspection), args.Error(1)
}
