package manager

import (
	"errors"
	"time"

	"mlserve/internal/model"
)

// fakeClassifier returns a fixed label (or error) and records its last input.
type fakeClassifier struct {
	label int
	err   error
	last  model.Features
}

func (f *fakeClassifier) Classify(x model.Features) (int, error) {
	f.last = x
	return f.label, f.err
}

func loaderFor(c model.Classifier, err error) Loader {
	return func(string) (model.Classifier, error) { return c, err }
}

// stepClock advances by step on every call, so Load observes exactly one step.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(1700000000, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

var errBoom = errors.New("boom")
