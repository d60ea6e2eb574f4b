package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Projects  int       `json:"projects"`
}

// ProjectCounter reports how many projects the service is serving.
type ProjectCounter interface {
	Count() int
}

type HealthHandler struct {
	serviceName string
	version     string
	projects    ProjectCounter
}

func NewHealthHandler(serviceName, version string, projects ProjectCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		projects:    projects,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	count := 0
	if h.projects != nil {
		count = h.projects.Count()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Projects:  count,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
