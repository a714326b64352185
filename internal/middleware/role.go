package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/crease/pkg/token"
)

// RoleMiddleware admits only bearers whose token role is one of
// requiredRoles. An empty secret disables the check.
func RoleMiddleware(jwtSecret, issuer string, requiredRoles ...string) gin.HandlerFunc {
	if jwtSecret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		claims, ok := authenticate(c, jwtSecret, issuer)
		if !ok {
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(claims.Role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}
		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "You don't have permission to access this resource",
				"required": requiredRoles,
			})
			return
		}
		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for tournament administration.
func AdminMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return RoleMiddleware(jwtSecret, issuer, token.RoleAdmin)
}
