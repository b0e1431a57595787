package mocks

import (
	"github.com/stretchr/testify/mock"

	"tglogin/internal/domain"
)

// MockLoginVerifier is a mock implementation of port.LoginVerifier.
type MockLoginVerifier struct {
	mock.Mock
}

func (m *MockLoginVerifier) Verify(fields map[string]string, hash string) (*domain.TelegramUser, error) {
	args := m.Called(fields, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TelegramUser), args.Error(1)
}

func (m *MockLoginVerifier) Provider() string {
	args := m.Called()
	return args.String(0)
}
