package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tglogin/internal/domain"
	"tglogin/internal/middleware"
	"tglogin/internal/service"
)

// maxLoginBodyBytes bounds the login payload; widget payloads are well under 1 KiB.
const maxLoginBodyBytes = 16 << 10

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// MeResponse describes the identity behind a valid access token.
type MeResponse struct {
	User         domain.TelegramUser `json:"user"`
	Provider     domain.AuthProvider `json:"provider"`
	SessionToken string              `json:"session_token"`
	ExpiresAt    time.Time           `json:"expires_at"`
}

// TelegramLogin handles POST /api/v1/auth/telegram
func (h *AuthHandler) TelegramLogin(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxLoginBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		HandleError(c, domain.ErrMalformedPayload)
		return
	}

	fields, hash, err := DecodeLoginPayload(body)
	if err != nil {
		HandleError(c, err)
		return
	}

	output, err := h.authService.TelegramLogin(c.Request.Context(), service.TelegramLoginInput{
		Fields: fields,
		Hash:   hash,
		Nonce:  uuid.NewString(),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, output)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := MeResponse{
		User:         claims.User,
		Provider:     claims.Provider,
		SessionToken: claims.ID,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	RespondOK(c, resp)
}
