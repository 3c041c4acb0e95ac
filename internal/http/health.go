package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports on the store behind the service.
type HealthChecker interface {
	Ping() error
}

// QuoteCounter is optional; when set the health report includes the number of stored quotes.
type QuoteCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      HealthChecker
	counter QuoteCounter
	version string
}

func NewHealthController(db HealthChecker, counter QuoteCounter, version string) *HealthController {
	return &HealthController{
		db:      db,
		counter: counter,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			log.Printf("Health: database ping failed: %v", err)
			checks["database"] = "error"
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	if h.counter != nil && status == "healthy" {
		if count, err := h.counter.Count(c.Request.Context()); err == nil {
			checks["quotes"] = strconv.FormatInt(count, 10)
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
