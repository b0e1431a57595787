package port

import "tglogin/internal/domain"

// LoginVerifier validates a signed login payload from an identity provider.
// fields excludes the hash, which is passed separately.
type LoginVerifier interface {
	Verify(fields map[string]string, hash string) (*domain.TelegramUser, error)
	Provider() string
}
