package auth

import (
	"net/http"
	"strings"

	"sos-escalation-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// AuthMiddleware guards the API with bearer tokens issued by AuthService
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token. The caller's
// username is attached to the request context for logging.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token is required"})
			return
		}

		claims, err := m.service.ValidateJWT(token)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Username))
		c.Next()
	}
}

// RequireRole lets through only callers whose token carries one of roles.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token is required"})
			return
		}
		for _, role := range roles {
			if strings.EqualFold(claims.Role, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role " + claims.Role + " may not perform this action"})
	}
}

// GetUsername returns the authenticated caller's username
func GetUsername(c *gin.Context) (string, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return "", false
	}
	return claims.Username, true
}

// GetAuthClaims returns the claims RequireAuth stored on the context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	return claims, ok
}
