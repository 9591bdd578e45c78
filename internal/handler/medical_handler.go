package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helios-ride/service-routing/internal/application"
	"github.com/helios-ride/service-routing/internal/platform/response"
)

// MedicalHandler renders the medical ID page.
type MedicalHandler struct {
	service *application.MedicalService
}

// NewMedicalHandler creates a new MedicalHandler.
func NewMedicalHandler(service *application.MedicalService) *MedicalHandler {
	return &MedicalHandler{service: service}
}

// RegisterRoutes registers the medical ID endpoint. The engine must have the
// templates from MustLoadTemplates installed.
func (h *MedicalHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/medical_id", h.GetMedicalID)
}

// GetMedicalID handles GET /api/medical_id?uid=.
func (h *MedicalHandler) GetMedicalID(c *gin.Context) {
	record, err := h.service.GetMedicalID(c.Request.Context(), c.Query("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.HTML(http.StatusOK, "medical_id.html", record)
}
