package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/pkg/token"
)

const (
	AuthScorerIDKey = "auth_scorer_id"
	AuthRoleKey     = "auth_role"
)

// authenticate verifies the bearer token and stores its identity on the
// context. It writes the 401 itself and reports false on failure.
func authenticate(c *gin.Context, jwtSecret, issuer string) (*token.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
		return nil, false
	}

	claims, err := token.ValidateJWT(bearerToken[1], jwtSecret, issuer)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		return nil, false
	}

	c.Set(AuthScorerIDKey, claims.ScorerID)
	c.Set(AuthRoleKey, claims.Role)
	return claims, true
}

// ScorerMiddleware guards ledger writes with a bearer token issued by the
// identity service. An empty secret disables the check.
func ScorerMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	if jwtSecret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		claims, ok := authenticate(c, jwtSecret, issuer)
		if !ok {
			return
		}
		if !claims.CanScore() {
			log.Ctx(c.Request.Context()).Warn().Uint("scorer_id", claims.ScorerID).Str("role", claims.Role).Msg("role may not score")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token role may not modify match data"})
			return
		}
		c.Next()
	}
}

// GetScorerIDFromContext extracts the scorer ID from the context
func GetScorerIDFromContext(c *gin.Context) (uint, error) {
	scorerID, exists := c.Get(AuthScorerIDKey)
	if !exists {
		return 0, errors.New("scorer ID not found in context")
	}

	sid, ok := scorerID.(uint)
	if !ok {
		return 0, fmt.Errorf("scorer ID has unexpected type: %T", scorerID)
	}

	return sid, nil
}
