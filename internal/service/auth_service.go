package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"tglogin/internal/auth/telegram"
	"tglogin/internal/config"
	"tglogin/internal/domain"
	"tglogin/internal/port"
)

const accessAudience = "access"

// Claims represents the JWT claims carried by an access token.
// The JWT ID is the session token issued at login.
type Claims struct {
	jwt.RegisteredClaims
	Provider domain.AuthProvider `json:"provider"`
	User     domain.TelegramUser `json:"user"`
}

// TelegramLoginInput is a decoded login widget payload.
type TelegramLoginInput struct {
	Fields map[string]string
	Hash   string
	// Nonce must be generated server-side for every request.
	Nonce string
}

// TelegramLoginOutput contains the results of a successful login.
type TelegramLoginOutput struct {
	User         *domain.TelegramUser `json:"user"`
	SessionToken string               `json:"session_token"`
	AccessToken  string               `json:"access_token"`
	ExpiresAt    time.Time            `json:"expires_at"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	TelegramLogin(ctx context.Context, input TelegramLoginInput) (*TelegramLoginOutput, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	verifier port.LoginVerifier
	cfg      config.JWTConfig
	log      *zap.Logger
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(verifier port.LoginVerifier, cfg config.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		verifier: verifier,
		cfg:      cfg,
		log:      log,
	}
}

func (s *authService) TelegramLogin(_ context.Context, input TelegramLoginInput) (*TelegramLoginOutput, error) {
	if input.Nonce == "" {
		return nil, errors.New("auth.TelegramLogin: empty nonce")
	}

	user, err := s.verifier.Verify(input.Fields, input.Hash)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			s.log.Info("telegram login rejected",
				zap.String("provider", s.verifier.Provider()),
				zap.String("telegram_id", input.Fields[domain.FieldID]),
			)
		}
		return nil, err
	}

	sessionToken := telegram.IssueSessionToken(user, input.Nonce)

	accessToken, expiresAt, err := s.signAccessToken(user, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("auth.TelegramLogin: %w", err)
	}

	s.log.Info("telegram login verified",
		zap.String("provider", s.verifier.Provider()),
		zap.String("telegram_id", user.ID),
		zap.String("username", user.Username),
	)

	return &TelegramLoginOutput{
		User:         user,
		SessionToken: sessionToken,
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithAudience(accessAudience),
		jwt.WithIssuer(s.cfg.Issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing token: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) signAccessToken(user *domain.TelegramUser, sessionToken string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTokenExpiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        sessionToken,
			Audience:  jwt.ClaimStrings{accessAudience},
		},
		Provider: domain.AuthProvider(s.verifier.Provider()),
		User:     *user,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}
	return signed, expiresAt, nil
}
