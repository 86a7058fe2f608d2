package model

import "fmt"

// leafMarker marks a node without children, as in scikit-learn's tree_ arrays.
const leafMarker = -1

// tree is a binary decision tree stored as flat node arrays. Children always
// have a larger index than their parent, which rules out cycles.
type tree struct {
	feature   []int
	threshold []float64
	left      []int
	right     []int
	leaf      []int // class index per node, only meaningful for leaves
	labels    labeler
}

func newTree(a Artifact) (Classifier, error) {
	n := len(a.Left)
	if n == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	if len(a.Right) != n || len(a.Feature) != n || len(a.Threshold) != n || len(a.Value) != n {
		return nil, fmt.Errorf("node arrays differ in length: left=%d right=%d feature=%d threshold=%d value=%d",
			n, len(a.Right), len(a.Feature), len(a.Threshold), len(a.Value))
	}
	t := &tree{
		feature:   a.Feature,
		threshold: a.Threshold,
		left:      a.Left,
		right:     a.Right,
		leaf:      make([]int, n),
		labels:    a.Classes,
	}
	classes := 0
	for i := 0; i < n; i++ {
		if a.Left[i] == leafMarker {
			if a.Right[i] != leafMarker {
				return nil, fmt.Errorf("node %d: left is a leaf marker but right=%d", i, a.Right[i])
			}
			if len(a.Value[i]) == 0 {
				return nil, fmt.Errorf("node %d: leaf has no class values", i)
			}
			if classes == 0 {
				classes = len(a.Value[i])
			} else if len(a.Value[i]) != classes {
				return nil, fmt.Errorf("node %d: leaf has %d class values, want %d", i, len(a.Value[i]), classes)
			}
			t.leaf[i] = argmax(a.Value[i])
			continue
		}
		if a.Left[i] <= i || a.Left[i] >= n || a.Right[i] <= i || a.Right[i] >= n {
			return nil, fmt.Errorf("node %d: children (%d, %d) out of range", i, a.Left[i], a.Right[i])
		}
		if a.Feature[i] < 0 || a.Feature[i] >= FeatureCount {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, a.Feature[i])
		}
	}
	if err := checkClasses(a.Classes, classes); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tree) Classify(x Features) (int, error) {
	if err := checkFinite(x); err != nil {
		return 0, err
	}
	i := 0
	for t.left[i] != leafMarker {
		if x[t.feature[i]] <= t.threshold[i] {
			i = t.left[i]
		} else {
			i = t.right[i]
		}
	}
	return t.labels.label(t.leaf[i]), nil
}
