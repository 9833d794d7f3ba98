package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repair-app/internal/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), actorFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetMasters(c *gin.Context) {
	masters, err := h.service.ListMasters(c.Request.Context(), actorFromContext(c))
	if err != nil {
		respondError(c, err, "failed to fetch masters")
		return
	}
	c.JSON(http.StatusOK, gin.H{"masters": masters})
}

func (h *UserHandler) SetBlocked(c *gin.Context) {
	var req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.service.SetBlocked(c.Request.Context(), actorFromContext(c), c.Param("id"), *req.Blocked)
	if err != nil {
		respondError(c, err, "failed to block user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
