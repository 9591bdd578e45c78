package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/helios-ride/service-routing/internal/platform/database"
)

// HealthHandler serves liveness endpoints.
type HealthHandler struct {
	db      *gorm.DB
	service string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when no record store is configured.
func NewHealthHandler(db *gorm.DB, service string) *HealthHandler {
	return &HealthHandler{db: db, service: service}
}

// RegisterRoutes registers the health routes.
func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.GET("/healthz", h.Health)
}

// Home handles GET /.
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Helios routing backend is live!",
	})
}

// Health handles GET /healthz. The service stays healthy without a record store.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "not_configured"
	if h.db != nil {
		dbStatus = "up"
		if err := database.Ping(h.db); err != nil {
			dbStatus = "down"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  h.service,
		"database": dbStatus,
	})
}
