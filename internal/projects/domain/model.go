package domain

// Project represents a single energy infrastructure site in the catalog.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Project type labels used by the seeded catalog. Type is free-form, these are not exhaustive.
const (
	TypeSolar         = "solar"
	TypeWind          = "wind"
	TypeHydroelectric = "hydroelectric"
)
