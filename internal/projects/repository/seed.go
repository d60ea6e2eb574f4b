package repository

import "github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"

// SeedProjects returns the built-in catalog records. A fresh slice is returned on every call.
func SeedProjects() []domain.Project {
	return []domain.Project{
		{ID: 1, Name: "Solar Farm Alpha", Type: domain.TypeSolar, Latitude: 40.7128, Longitude: -74.0060},
		{ID: 2, Name: "Wind Farm Beta", Type: domain.TypeWind, Latitude: 34.0522, Longitude: -118.2437},
		{ID: 3, Name: "Hydro Plant Gamma", Type: domain.TypeHydroelectric, Latitude: 47.6062, Longitude: -122.3321},
	}
}
