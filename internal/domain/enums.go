package domain

// AuthProvider identifies the identity provider that vouched for a login.
type AuthProvider string

const (
	AuthProviderTelegram AuthProvider = "telegram"
)
