package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"tglogin/internal/domain"
	"tglogin/internal/port"
)

// Verifier checks Telegram Login Widget payloads against a bot token.
// The signing secret is derived once; a Verifier is safe for concurrent use.
type Verifier struct {
	configured bool
	secret     [sha256.Size]byte
}

// NewVerifier creates a Verifier for the given bot token. An empty token is
// accepted so the service can start unconfigured; every Verify call then
// fails with domain.ErrMissingCredential.
func NewVerifier(botToken string) *Verifier {
	v := &Verifier{configured: botToken != ""}
	if v.configured {
		v.secret = SigningSecret(botToken)
	}
	return v
}

// Configured reports whether a bot token was supplied.
func (v *Verifier) Configured() bool {
	return v.configured
}

func (v *Verifier) Verify(fields map[string]string, hash string) (*domain.TelegramUser, error) {
	if !v.configured {
		return nil, domain.ErrMissingCredential
	}
	if hash == "" {
		return nil, domain.ErrMissingTag
	}
	if !hmac.Equal([]byte(ComputeHash(v.secret[:], fields)), []byte(hash)) {
		return nil, domain.ErrInvalidSignature
	}
	return projectUser(fields), nil
}

func (v *Verifier) Provider() string {
	return string(domain.AuthProviderTelegram)
}

// Verify checks a single payload against botToken without keeping a Verifier.
func Verify(fields map[string]string, hash, botToken string) (*domain.TelegramUser, error) {
	return NewVerifier(botToken).Verify(fields, hash)
}

// SigningSecret derives the HMAC key from the bot token.
func SigningSecret(botToken string) [sha256.Size]byte {
	return sha256.Sum256([]byte(botToken))
}

// ComputeHash returns the lowercase hex HMAC-SHA-256 of the canonical form of fields.
func ComputeHash(secret []byte, fields map[string]string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(Canonicalize(fields)))
	return hex.EncodeToString(mac.Sum(nil))
}

func projectUser(fields map[string]string) *domain.TelegramUser {
	return &domain.TelegramUser{
		ID:        fields[domain.FieldID],
		FirstName: fields[domain.FieldFirstName],
		LastName:  fields[domain.FieldLastName],
		Username:  fields[domain.FieldUsername],
		PhotoURL:  fields[domain.FieldPhotoURL],
		AuthDate:  fields[domain.FieldAuthDate],
	}
}

// Compile-time check.
var _ port.LoginVerifier = (*Verifier)(nil)
