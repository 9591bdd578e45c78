package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helios-ride/service-routing/internal/platform/domain"
)

// Success writes data as a 200 JSON body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound writes a 404 with the given message.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// InternalError writes a 500 with the given message.
func InternalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
}

// Error maps an application error to its HTTP status and writes {"error": msg}.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusFor(err), gin.H{"error": err.Error()})
}

// StatusFor returns the HTTP status code for err.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
