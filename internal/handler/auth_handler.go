package handler

import (
	"errors"
	"net/http"

	"praisy_backend/internal/middleware"
	"praisy_backend/internal/model"
	"praisy_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CookieConfig controls the session cookie set at login. MaxAge is
// deliberately independent from the token's own expiry.
type CookieConfig struct {
	MaxAge int  // seconds
	Secure bool // true in production
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	cookie  CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: s, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": service.ErrUserAlreadyExists.Error()})
			return
		}
		log.Error().Err(err).Msg("Register error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": service.ErrInvalidCredentials.Error()})
			return
		}
		log.Error().Err(err).Msg("Login error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	user, err := h.service.GetMe(c.Request.Context(), authUser.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Error().Err(err).Msg("GetMe error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, user.PublicWithCreatedAt())
}

// Logout clears the session cookie. It succeeds even when no cookie was
// present; a still-valid bearer token remains accepted afterwards since
// tokens are stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", authMW, h.GetMe)
		authGroup.POST("/logout", h.Logout)
	}
}
