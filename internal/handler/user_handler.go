package handler

import (
	"errors"
	"net/http"

	"praisy_backend/internal/model"
	"praisy_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UserHandler handles admin user management requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Get users error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	projections := make([]model.PublicUserWithCreatedAt, 0, len(users))
	for i := range users {
		projections = append(projections, users[i].PublicWithCreatedAt())
	}
	c.JSON(http.StatusOK, projections)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.service.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		log.Error().Err(err).Msg("Get user error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user.PublicWithCreatedAt())
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": service.ErrUserNotFound.Error()})
			return
		}
		if errors.Is(err, service.ErrCannotDeleteAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": service.ErrCannotDeleteAdmin.Error()})
			return
		}
		log.Error().Err(err).Msg("Delete user error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// RegisterUserRoutes registers admin user management routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	userRoutes := rg.Group("/users")
	userRoutes.Use(authMW)
	userRoutes.Use(adminMW)
	{
		userRoutes.GET("", h.ListUsers)
		userRoutes.GET("/:id", h.GetUserByID)
		userRoutes.DELETE("/:id", h.DeleteUser)
	}
}
