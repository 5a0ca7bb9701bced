package middleware

import (
	"net/http"

	"praisy_backend/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles. The
// check is strict equality against the allowed set; there is no hierarchy.
func RoleMiddleware(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User not found in context, ensure auth middleware runs first"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as an admin"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
