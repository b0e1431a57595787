package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tglogin/internal/domain"
	"tglogin/internal/service"
)

const (
	ContextKeyTelegramID = "telegram_id"
	ContextKeyClaims     = "claims"
)

// AuthMiddleware returns Gin middleware that validates access tokens and
// injects the verified Telegram identity.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyTelegramID, claims.Subject)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims extracts the access token claims from the Gin context.
func GetClaims(c *gin.Context) (*service.Claims, error) {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, domain.ErrUnauthorized
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
