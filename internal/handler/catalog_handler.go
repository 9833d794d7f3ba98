package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repair-app/internal/models"
	"repair-app/internal/services"
)

type CatalogHandler struct {
	service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List открыт без токена: каталог услуг виден до входа.
func (h *CatalogHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	service, err := h.service.Create(c.Request.Context(), actorFromContext(c), input)
	if err != nil {
		respondError(c, err, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var upd models.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	service, err := h.service.Update(c.Request.Context(), actorFromContext(c), c.Param("id"), upd)
	if err != nil {
		respondError(c, err, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
