package domain

import "errors"

// ============================================================================
// Dataset Load Errors
// ============================================================================

var (
	ErrDatasetNotFound = errors.New("dataset file not found")
	ErrMissingColumn   = errors.New("dataset is missing a required column")
	ErrEmptyDataset    = errors.New("dataset contains no usable rows")
)

// ============================================================================
// Query Errors
// ============================================================================

// Not found errors
var (
	ErrCountryNotFound = errors.New("country not found in loaded datasets")
	ErrNoObservations  = errors.New("no observations match the requested filter")
)

// Validation errors
var (
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownSex       = errors.New("unknown sex")
	ErrUnknownIncome    = errors.New("unknown income group")
	ErrInvalidYearRange = errors.New("year range start must not exceed end")
	ErrInvalidHorizon   = errors.New("forecast horizon must be between 0 and 50")
	ErrInvalidLimit     = errors.New("ranking limit must be positive")
)
