package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quoteserver/internal/errkind"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondLookupError maps a failed lookup onto the API's two error outcomes.
func respondLookupError(c *gin.Context, err error, context string) {
	switch errkind.OutcomeOf(err) {
	case errkind.OutcomeNotFound:
		log.Printf("API: %s: %v", context, err)
		respondNotFound(c, "quote")
	default:
		respondInternalError(c, err, context)
	}
}
