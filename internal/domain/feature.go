package domain

type FeatureType string

const (
	FeatureNumerical   FeatureType = "numerical"
	FeatureCategorical FeatureType = "categorical"
)

func (t FeatureType) Valid() bool {
	return t == FeatureNumerical || t == FeatureCategorical
}

// Feature is a feature-store entry with its model importance in [0, 1].
type Feature struct {
	Name       string
	Importance float64
	Type       FeatureType
	Source     string
}
