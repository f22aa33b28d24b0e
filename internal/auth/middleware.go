package auth

import (
	"net/http"
	"strings"

	"lfg-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth
const (
	handleKey = "player_handle"
	claimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the bearer token and stores the caller handle
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(handleKey, claims.Handle())
		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(logger.ContextWithPlayer(c.Request.Context(), claims.Handle()))

		c.Next()
	}
}

// GetPlayerHandle extracts the authenticated caller handle from context
func GetPlayerHandle(c *gin.Context) (string, bool) {
	handle, exists := c.Get(handleKey)
	if !exists {
		return "", false
	}

	h, ok := handle.(string)
	return h, ok && h != ""
}

// GetClaims extracts the full token claims from context
func GetClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}
