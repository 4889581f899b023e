package middleware

import (
	"net/http"
	"strings"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	// HeaderRole carries the role tag picked at login.
	HeaderRole = "X-User-Role"
	// HeaderName carries the display name of the user.
	HeaderName = "X-User-Name"

	roleKey = "user_role"
	nameKey = "user_name"
)

// Identity reads the caller's role and name from the request headers into
// the context. A missing role leaves the caller without privileges; an
// unknown role is rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.GetHeader(HeaderName))

		var role domain.Role
		if tag := strings.TrimSpace(c.GetHeader(HeaderRole)); tag != "" {
			parsed, ok := domain.ParseRole(tag)
			if !ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INVALID_ROLE",
						"message": "unknown role " + tag,
					},
				})
				return
			}
			role = parsed
		}

		c.Set(roleKey, role)
		c.Set(nameKey, name)
		c.Next()
	}
}

// Actor returns the role and name stored by Identity.
func Actor(c *gin.Context) (domain.Role, string) {
	role, _ := c.Get(roleKey)
	name, _ := c.Get(nameKey)
	r, _ := role.(domain.Role)
	n, _ := name.(string)
	return r, n
}
