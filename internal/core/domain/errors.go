package domain

import "errors"

// ============================================================================
// Model Artifact Errors
// ============================================================================

var (
	ErrArtifactLoad     = errors.New("model artifact could not be loaded")
	ErrArtifactFormat   = errors.New("model artifact is malformed")
	ErrFeatureMismatch  = errors.New("model artifact feature order does not match the input schema")
	ErrModelUnavailable = errors.New("no model artifact loaded")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrShapeMismatch = errors.New("feature vector does not match the model input dimension")
)

// ============================================================================
// Dataset Errors
// ============================================================================

// Not found errors
var (
	ErrDatasetUnavailable = errors.New("dataset is not available")
	ErrColumnNotFound     = errors.New("dataset column not found")
)

// Validation errors
var (
	ErrInvalidRowCount = errors.New("row count must be between 1 and 100")
)
