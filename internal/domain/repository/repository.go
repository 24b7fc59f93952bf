package repository

import "errors"

// Sentinel errors shared by all repository implementations. Services map
// these onto the API error taxonomy.
var (
	ErrNotFound  = errors.New("row not found")
	ErrDuplicate = errors.New("duplicate row")
)
