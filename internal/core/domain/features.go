package domain

// Feature column names, in the exact order the price model was fitted with.
const (
	FeatureHighwayMPG = "highwaympg"
	FeatureCurbWeight = "curbweight"
	FeatureHorsepower = "horsepower"
	FeatureCarWidth   = "carwidth"
)

// FeatureNames is the input schema of the price model. FeatureVector.Values
// emits values in this order and artifacts must declare the same list.
var FeatureNames = []string{
	FeatureHighwayMPG,
	FeatureCurbWeight,
	FeatureHorsepower,
	FeatureCarWidth,
}

// FeatureVector describes one car for a single prediction.
type FeatureVector struct {
	HighwayMPG float64
	CurbWeight float64
	Horsepower float64
	CarWidth   float64
}

// Values maps the named fields onto the ordered vector the model expects.
// This is the only place that order is encoded.
func (f FeatureVector) Values() []float64 {
	return []float64{f.HighwayMPG, f.CurbWeight, f.Horsepower, f.CarWidth}
}

// Bound is an inclusive input range for one feature.
type Bound struct {
	Feature string
	Label   string
	Min     float64
	Max     float64
	Step    float64
}

// FeatureBounds lists the accepted input ranges, in feature order. They are
// enforced by the input surface, not by the estimator.
var FeatureBounds = []Bound{
	{Feature: FeatureHighwayMPG, Label: "Highway MPG", Min: 10, Max: 60, Step: 1},
	{Feature: FeatureCurbWeight, Label: "Curb Weight (kg)", Min: 500, Max: 3000, Step: 50},
	{Feature: FeatureHorsepower, Label: "Horsepower", Min: 50, Max: 500, Step: 5},
	{Feature: FeatureCarWidth, Label: "Car Width (cm)", Min: 100, Max: 300, Step: 1},
}

// ReferenceAverages is the comparison baseline shown next to a prediction.
var ReferenceAverages = FeatureVector{
	HighwayMPG: 30,
	CurbWeight: 1500,
	Horsepower: 150,
	CarWidth:   170,
}

// PriceEstimate is the model output for one FeatureVector.
type PriceEstimate struct {
	Value float64
}

// FeatureComparison is one bar pair of the input-vs-average chart.
type FeatureComparison struct {
	Feature string
	Label   string
	Input   float64
	Average float64
}
