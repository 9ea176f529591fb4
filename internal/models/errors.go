package models

import "errors"

// Custom errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateKey     = errors.New("duplicate key violation")
	ErrTeamNameRequired = errors.New("team name is required")
	ErrInvalidID        = errors.New("invalid ID format")
)
