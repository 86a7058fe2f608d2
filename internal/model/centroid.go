package model

// centroid assigns the class whose centroid is closest in squared euclidean distance.
type centroid struct {
	centroids [][]float64
	labels    labeler
}

func newCentroid(a Artifact) (Classifier, error) {
	if err := checkRows("centroids", a.Centroids); err != nil {
		return nil, err
	}
	if err := checkClasses(a.Classes, len(a.Centroids)); err != nil {
		return nil, err
	}
	return &centroid{centroids: a.Centroids, labels: a.Classes}, nil
}

func (m *centroid) Classify(x Features) (int, error) {
	if err := checkFinite(x); err != nil {
		return 0, err
	}
	best, bestDist := 0, 0.0
	for i, c := range m.centroids {
		d := 0.0
		for j, v := range c {
			diff := x[j] - v
			d += diff * diff
		}
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return m.labels.label(best), nil
}
