package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helios-ride/service-routing/internal/application"
	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/response"
)

// RouteHandler handles HTTP requests for scored routes.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers the route lookup endpoint.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/route", h.GetRoute)
}

// GetRoute handles GET /api/route?start_lat=&start_lon=&end_lat=&end_lon=.
func (h *RouteHandler) GetRoute(c *gin.Context) {
	start, okStart := parseLatLng(c, "start_lat", "start_lon")
	end, okEnd := parseLatLng(c, "end_lat", "end_lon")
	if !okStart || !okEnd {
		response.BadRequest(c, "Invalid or missing coordinate format")
		return
	}

	result, err := h.service.PlanRoute(c.Request.Context(), application.RouteRequest{Start: start, End: end})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func parseLatLng(c *gin.Context, latKey, lngKey string) (route.LatLng, bool) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil {
		return route.LatLng{}, false
	}
	lng, err := strconv.ParseFloat(c.Query(lngKey), 64)
	if err != nil {
		return route.LatLng{}, false
	}
	return route.LatLng{Lat: lat, Lng: lng}, true
}
