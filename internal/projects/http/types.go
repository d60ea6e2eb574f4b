package http

import (
	"context"

	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"
	"go.uber.org/zap"
)

// ProjectReader is the read side of the project service used by the handlers.
type ProjectReader interface {
	List(ctx context.Context, projectType *string) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc    ProjectReader
	logger *zap.Logger
}

func New(svc ProjectReader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

type projectURI struct {
	ProjectID int `uri:"project_id"`
}

// validationError mirrors the error item shape clients already parse for bad parameters.
type validationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
