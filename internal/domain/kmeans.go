package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// KMeansModel holds the fitted cluster centroids in scaled feature space.
// Prediction is nearest-centroid by Euclidean distance, which is exactly what
// the training-side predict step does.
type KMeansModel struct {
	Centroids [][]float64 `json:"centroids"`
}

// Dim returns the feature dimensionality of the centroids.
func (m *KMeansModel) Dim() int {
	if len(m.Centroids) == 0 {
		return 0
	}
	return len(m.Centroids[0])
}

// Validate checks the model has at least one centroid and consistent
// dimensions across all of them.
func (m *KMeansModel) Validate() error {
	if len(m.Centroids) == 0 {
		return fmt.Errorf("model has no centroids")
	}
	dim := len(m.Centroids[0])
	if dim == 0 {
		return fmt.Errorf("model centroids are zero-dimensional")
	}
	for i, c := range m.Centroids {
		if len(c) != dim {
			return fmt.Errorf("centroid %d has dimension %d, want %d", i, len(c), dim)
		}
	}
	return nil
}

// Predict returns the index of the centroid nearest to the scaled vector.
// Ties resolve to the lowest index, so identical vectors always map to the
// same segment.
func (m *KMeansModel) Predict(vec *mat.VecDense) (int, error) {
	if len(m.Centroids) == 0 {
		return 0, fmt.Errorf("model has no centroids")
	}
	if vec.Len() != m.Dim() {
		return 0, fmt.Errorf("vector length %d does not match model dimension %d", vec.Len(), m.Dim())
	}

	best := 0
	bestDist := -1.0
	diff := mat.NewVecDense(vec.Len(), nil)
	for i, c := range m.Centroids {
		centroid := mat.NewVecDense(len(c), c)
		diff.SubVec(vec, centroid)
		dist := mat.Norm(diff, 2)
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, nil
}
