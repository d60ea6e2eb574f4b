package repository

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"
)

// Catalog is the immutable, ordered set of projects served by the API.
// It is built once at startup and only read afterwards, so it is safe for
// concurrent use without locking.
type Catalog struct {
	items []domain.Project
	byID  map[int]int
}

// NewCatalog validates the records and returns a catalog holding a private copy of them.
func NewCatalog(records []domain.Project) (*Catalog, error) {
	items := make([]domain.Project, len(records))
	copy(items, records)

	byID := make(map[int]int, len(items))
	for i, p := range items {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: project at index %d has non-positive id %d", domain.ErrInvalidCatalog, i, p.ID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: project %d has an empty name", domain.ErrInvalidCatalog, p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %d", domain.ErrInvalidCatalog, p.ID)
		}
		byID[p.ID] = i
	}

	return &Catalog{items: items, byID: byID}, nil
}

// NewSeededCatalog returns the catalog populated with the built-in projects.
func NewSeededCatalog() (*Catalog, error) {
	return NewCatalog(SeedProjects())
}

// List returns every project in catalog order.
func (c *Catalog) List() []domain.Project {
	out := make([]domain.Project, len(c.items))
	copy(out, c.items)
	return out
}

// ListByType returns the projects whose type matches projectType, ignoring case.
// The result is never nil.
func (c *Catalog) ListByType(projectType string) []domain.Project {
	want := strings.ToLower(projectType)
	out := make([]domain.Project, 0)
	for _, p := range c.items {
		if strings.ToLower(p.Type) == want {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns the project with the given id or domain.ErrProjectNotFound.
func (c *Catalog) GetByID(id int) (*domain.Project, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p := c.items[i]
	return &p, nil
}

// Len reports the number of projects in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
