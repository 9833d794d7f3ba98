package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repair-app/internal/models"
	"repair-app/internal/services"
)

type TicketHandler struct {
	service *services.TicketService
}

func NewTicketHandler(service *services.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Create(c *gin.Context) {
	var input services.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ticket, err := h.service.Create(c.Request.Context(), actorFromContext(c), input)
	if err != nil {
		respondError(c, err, "failed to create ticket")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

func (h *TicketHandler) List(c *gin.Context) {
	filters := services.ListFilters{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	tickets, err := h.service.List(c.Request.Context(), actorFromContext(c), filters)
	if err != nil {
		respondError(c, err, "failed to get tickets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.service.Get(c.Request.Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) Update(c *gin.Context) {
	var upd models.TicketUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ticket, err := h.service.Update(c.Request.Context(), actorFromContext(c), c.Param("id"), upd)
	if err != nil {
		respondError(c, err, "failed to update ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ticket, err := h.service.AddComment(c.Request.Context(), actorFromContext(c), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err, "failed to add comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) Assign(c *gin.Context) {
	var req struct {
		MasterID string `json:"masterId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ticket, err := h.service.Assign(c.Request.Context(), actorFromContext(c), c.Param("id"), req.MasterID)
	if err != nil {
		respondError(c, err, "failed to assign ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}
