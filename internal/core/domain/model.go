package domain

// ModelKind identifies the regression family stored in an artifact.
type ModelKind string

const (
	ModelKindLinearRegression ModelKind = "linear_regression"
)

// ModelInfo describes the loaded artifact.
type ModelInfo struct {
	Kind        ModelKind
	Features    []string
	Source      string
	Fingerprint string
	Scaled      bool
}
