package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidCatalog  = errors.New("invalid project catalog")
)
