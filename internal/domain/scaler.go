package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StandardScaler standardizes a feature vector with the mean and standard
// deviation captured at training time: (x - mean) / scale, per feature.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Dim returns the number of features the scaler was fitted on.
func (s *StandardScaler) Dim() int {
	return len(s.Mean)
}

// Validate checks internal consistency of the fitted parameters.
func (s *StandardScaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no fitted parameters")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean/scale length mismatch: %d vs %d", len(s.Mean), len(s.Scale))
	}
	return nil
}

// Transform returns a standardized copy of the vector. Constant features
// (zero scale) pass through centered only, matching the fitted behavior.
func (s *StandardScaler) Transform(vec *mat.VecDense) (*mat.VecDense, error) {
	if vec.Len() != s.Dim() {
		return nil, fmt.Errorf("vector length %d does not match scaler dimension %d", vec.Len(), s.Dim())
	}

	out := mat.NewVecDense(vec.Len(), nil)
	for i := 0; i < vec.Len(); i++ {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out.SetVec(i, (vec.AtVec(i)-s.Mean[i])/scale)
	}
	return out, nil
}
