// Package model decodes classifier artifacts and exposes them through a
// single capability: classify one fixed-size feature vector into a label.
package model

import (
	"errors"
	"math"
)

// FeatureCount is the length of every feature vector accepted by a Classifier.
const FeatureCount = 4

// Features is one input vector.
type Features [FeatureCount]float64

// Classifier is the only operation the server needs from a loaded model.
// Implementations are immutable after construction and safe for concurrent use.
type Classifier interface {
	Classify(x Features) (int, error)
}

// ErrNonFinite is returned when a feature is NaN or infinite.
var ErrNonFinite = errors.New("feature vector contains a non-finite value")

func checkFinite(x Features) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// labeler maps a class index to the label reported to callers.
type labeler []int

func (l labeler) label(i int) int {
	if len(l) == 0 {
		return i
	}
	return l[i]
}

// argmax returns the index of the largest value; ties go to the lowest index.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
