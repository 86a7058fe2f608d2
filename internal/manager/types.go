package manager

import (
	"time"

	"mlserve/internal/model"
)

// State is the outcome of the startup load.
type State string

const (
	StateReady State = "ready"
	StateError State = "error"
)

// Handle is the immutable result of the startup load. Exactly one of Model
// and Err is set.
type Handle struct {
	Model    model.Classifier
	Err      string
	LoadTime time.Duration
}

// State reports whether the handle holds a usable model.
func (h *Handle) State() State {
	if h.Model != nil {
		return StateReady
	}
	return StateError
}

// LoadTimeMS is the load duration in whole milliseconds, never negative.
func (h *Handle) LoadTimeMS() int64 {
	ms := h.LoadTime.Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State        State
	ModelPath    string
	ModelVersion string
	GitSHA       string
	Err          string
	LoadTime     time.Duration
}
