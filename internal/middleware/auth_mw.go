package middleware

import (
	"net/http"
	"strings"

	"praisy_backend/internal/model"
	"praisy_backend/internal/repository"
	"praisy_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthUserKey is the gin context key holding the authenticated *model.User.
const AuthUserKey = "authUser"

// TokenCookieName is the cookie the login endpoint sets and the middleware
// falls back to when no Authorization header is present.
const TokenCookieName = "token"

// extractToken returns the token from the Authorization header when it
// carries a Bearer scheme, otherwise from the token cookie. A malformed
// Bearer header yields no token; a non-Bearer scheme (e.g. Basic) is
// ignored entirely and the cookie is still consulted.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) > 0 && strings.ToLower(parts[0]) == "bearer" {
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware authenticates a request: it extracts and verifies the token,
// re-reads the user from the store (so role changes and deletions take effect
// immediately) and attaches the user to the request context. No state is
// cached between requests.
func AuthMiddleware(jwtUtil *utils.JWTUtil, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("Token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to resolve authenticated user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
