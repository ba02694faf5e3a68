package service

import "errors"

var (
	ErrMetadataNotFound   = errors.New("metadata not found")
	ErrInvalidMetadata    = errors.New("invalid metadata")
	ErrDuplicateName      = errors.New("metadata name already exists")
	ErrAccessDenied       = errors.New("access to metadata denied")
	ErrCatalogUnavailable = errors.New("catalog is unavailable")
)
