package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrSourceNotFound = errors.New("source not found")
	ErrPriceNotFound  = errors.New("no price recorded for this sku")

	// Validation errors
	ErrNameRequired      = errors.New("source name cannot be empty")
	ErrCreatedByRequired = errors.New("created_by cannot be empty")

	// Store-consistency errors
	ErrIDConflict        = errors.New("source id already in use")
	ErrStoreInconsistent = errors.New("source store is inconsistent")
)
