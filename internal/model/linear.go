package model

import "fmt"

// linear scores each class as coef·x + intercept. A single coefficient row is
// the binary form: positive score selects the second class.
type linear struct {
	coef      [][]float64
	intercept []float64
	labels    labeler
}

func newLinear(a Artifact) (Classifier, error) {
	if err := checkRows("coef", a.Coef); err != nil {
		return nil, err
	}
	rows := len(a.Coef)
	intercept := a.Intercept
	if len(intercept) == 0 {
		intercept = make([]float64, rows)
	}
	if len(intercept) != rows {
		return nil, fmt.Errorf("intercept has %d values, coef has %d rows", len(intercept), rows)
	}
	classes := rows
	if rows == 1 {
		classes = 2
	}
	if err := checkClasses(a.Classes, classes); err != nil {
		return nil, err
	}
	return &linear{coef: a.Coef, intercept: intercept, labels: a.Classes}, nil
}

func (m *linear) Classify(x Features) (int, error) {
	if err := checkFinite(x); err != nil {
		return 0, err
	}
	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		s := m.intercept[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}
	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.labels.label(1), nil
		}
		return m.labels.label(0), nil
	}
	return m.labels.label(argmax(scores)), nil
}
