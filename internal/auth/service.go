package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "lfg-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "lfg-backend"

// Claims represents JWT token claims. Subject carries the caller's
// platform handle.
type Claims struct {
	Tag string `json:"tag,omitempty"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Handle returns the caller handle stored in the subject
func (c *Claims) Handle() string {
	return c.Subject
}

// TokenService signs and validates bearer tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateJWT creates a token for the given handle
func (s *TokenService) GenerateJWT(handle, tag string) (string, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return "", apperrors.NewValidationError("handle", "is required")
	}
	now := s.now()
	claims := &Claims{
		Tag: tag,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   handle,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a token
func (s *TokenService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
