package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"repair-app/internal/models"
	"repair-app/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate принимает уже отфильтрованный вызывающей стороной список
// тикетов и возвращает PDF вложением.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req struct {
		Tickets     []models.Ticket `json:"tickets"`
		ReportType  string          `json:"reportType"`
		DateFrom    string          `json:"dateFrom"`
		DateTo      string          `json:"dateTo"`
		GeneratedAt time.Time       `json:"generatedAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if !services.Can(actorFromContext(c).Role, services.ReportGenerate) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	opts := services.ReportOptions{
		ReportType:  req.ReportType,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		GeneratedAt: req.GeneratedAt,
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now().UTC()
	}

	data, err := h.service.Generate(req.Tickets, opts)
	if err != nil {
		respondError(c, err, "failed to generate report")
		return
	}

	filename := fmt.Sprintf("report_%d.pdf", opts.GeneratedAt.UnixMilli())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
