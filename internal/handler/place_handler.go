package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/helios-ride/service-routing/internal/application"
	"github.com/helios-ride/service-routing/internal/platform/response"
)

// PlaceHandler handles HTTP requests for place autocompletion.
type PlaceHandler struct {
	service *application.PlaceService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(service *application.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// RegisterRoutes registers the autocomplete endpoint.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/autocomplete", h.Autocomplete)
}

// Autocomplete handles GET /api/autocomplete?input=.
func (h *PlaceHandler) Autocomplete(c *gin.Context) {
	result, err := h.service.Autocomplete(c.Request.Context(), c.Query("input"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
