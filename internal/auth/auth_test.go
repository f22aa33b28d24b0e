package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTOperations(t *testing.T) {
	service := NewTokenService("test-signing-key-for-jwt-operations", time.Hour)

	token, err := service.GenerateJWT("284019283", "Thrall#1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "284019283", claims.Handle())
	assert.Equal(t, "Thrall#1234", claims.Tag)
	assert.Equal(t, tokenIssuer, claims.Issuer)

	_, err = service.ValidateJWT("invalid-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestGenerateJWTRequiresHandle(t *testing.T) {
	service := NewTokenService("secret", time.Hour)

	_, err := service.GenerateJWT("  ", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestValidateJWTRejects(t *testing.T) {
	service := NewTokenService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other", time.Hour).GenerateJWT("1001", "")
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		issuer := NewTokenService("secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := issuer.GenerateJWT("1001", "")
		require.NoError(t, err)
		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "1001", Issuer: tokenIssuer},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = service.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
		})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = service.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewTokenService("test-signing-key", time.Hour)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		handle, ok := GetPlayerHandle(c)
		require.True(t, ok)
		claims, ok := GetClaims(c)
		require.True(t, ok)
		assert.Equal(t, handle, claims.Handle())
		assert.Equal(t, handle, c.Request.Context().Value(logger.PlayerHandleKey))
		c.String(http.StatusOK, handle)
	})

	token, err := service.GenerateJWT("1001", "Thrall#1234")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "1001", w.Body.String())
			}
		})
	}
}

func TestGetPlayerHandleMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetPlayerHandle(c)
	assert.False(t, ok)
	_, ok = GetClaims(c)
	assert.False(t, ok)
}
