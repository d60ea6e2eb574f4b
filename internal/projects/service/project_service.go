package service

import (
	"context"

	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/repository"
)

// ProjectService handles read queries over the project catalog
type ProjectService struct {
	catalog *repository.Catalog
}

// NewProjectService creates a new project service
func NewProjectService(catalog *repository.Catalog) *ProjectService {
	return &ProjectService{
		catalog: catalog,
	}
}

// List returns all projects, or only those of projectType when it is set.
// A nil or empty filter means no filtering.
func (s *ProjectService) List(ctx context.Context, projectType *string) ([]domain.Project, error) {
	if projectType == nil || *projectType == "" {
		return s.catalog.List(), nil
	}
	return s.catalog.ListByType(*projectType), nil
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id int) (*domain.Project, error) {
	return s.catalog.GetByID(id)
}

// Count returns the number of projects in the catalog
func (s *ProjectService) Count() int {
	return s.catalog.Len()
}
