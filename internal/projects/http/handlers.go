package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) list(c *gin.Context) {
	var projectType *string
	if values := c.QueryArray("project_type"); len(values) > 0 {
		// A repeated parameter keeps its last value.
		last := values[len(values)-1]
		projectType = &last
	}

	items, err := h.svc.List(c.Request.Context(), projectType)
	if err != nil {
		h.logger.Error("list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	var uri projectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []validationError{{
			Loc:  []string{"path", "project_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}})
		return
	}

	p, err := h.svc.Get(c.Request.Context(), uri.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Project not found"})
			return
		}
		h.logger.Error("get project", zap.Int("project_id", uri.ProjectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, p)
}
