package telegram

import (
	"crypto/sha256"
	"encoding/hex"

	"tglogin/internal/domain"
)

// IssueSessionToken derives the session identifier for a verified user as
// hex(SHA-256(id || nonce)). The nonce must be unpredictable and unique per
// login; the token is not stored anywhere.
func IssueSessionToken(user *domain.TelegramUser, nonce string) string {
	sum := sha256.Sum256([]byte(user.ID + nonce))
	return hex.EncodeToString(sum[:])
}
