package auth

import (
	"fmt"
	"time"

	apperrors "sos-escalation-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "sos-escalation-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username string `json:"username" example:"dispatcher-1"`
	Email    string `json:"email,omitempty" example:"dispatch@example.com"`
	Role     string `json:"role,omitempty" example:"supervisor"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates HMAC-signed bearer tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateJWT creates a JWT token for an operator or device
func (s *AuthService) GenerateJWT(username, email, role string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
