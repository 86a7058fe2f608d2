package manager

import (
	"fmt"

	"mlserve/internal/model"
	"mlserve/pkg/types"
)

// Manager serves queries against the model loaded at startup. All fields are
// written by Load and only read afterwards.
type Manager struct {
	path    string
	version string
	sha     string
	handle  *Handle
}

// Load attempts to deserialize the configured artifact exactly once and
// returns a Manager holding the outcome. It never fails: a load error, or a
// panicking loader, is recorded in the Handle and the Manager starts unready.
// The elapsed wall-clock time is recorded for both outcomes.
func Load(cfg ManagerConfig) *Manager {
	cfg = cfg.withDefaults()
	start := cfg.now()
	mdl, err := safeLoad(cfg.Loader, cfg.ModelPath)
	h := &Handle{LoadTime: cfg.now().Sub(start)}
	switch {
	case err != nil:
		h.Err = err.Error()
		if h.Err == "" {
			h.Err = "unknown load error"
		}
	case mdl == nil:
		h.Err = "loader returned no model"
	default:
		h.Model = mdl
	}
	m := &Manager{
		path:    cfg.ModelPath,
		version: cfg.ModelVersion,
		sha:     cfg.GitSHA,
		handle:  h,
	}
	recordLoad(h)
	if h.Model != nil {
		cfg.Events.Publish(Event{Name: EventModelLoaded, ModelPath: m.path, Fields: map[string]any{"load_time_ms": h.LoadTimeMS()}})
	} else {
		cfg.Events.Publish(Event{Name: EventModelLoadFailed, ModelPath: m.path, Fields: map[string]any{"error": h.Err, "load_time_ms": h.LoadTimeMS()}})
	}
	return m
}

func safeLoad(load Loader, path string) (mdl model.Classifier, err error) {
	defer func() {
		if r := recover(); r != nil {
			mdl, err = nil, fmt.Errorf("loader panic: %v", r)
		}
	}()
	return load(path)
}

// Ready reports whether a model is held.
func (m *Manager) Ready() bool { return m.handle.Model != nil }

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		State:        m.handle.State(),
		ModelPath:    m.path,
		ModelVersion: m.version,
		GitSHA:       m.sha,
		Err:          m.handle.Err,
		LoadTime:     m.handle.LoadTime,
	}
}

// Describe builds the /model-info payload. It never fails.
func (m *Manager) Describe() types.ModelInfoResponse {
	resp := types.ModelInfoResponse{
		ModelPath:    m.path,
		ModelVersion: m.version,
		GitSHA:       m.sha,
		Loaded:       m.Ready(),
		LoadTimeMS:   m.handle.LoadTimeMS(),
	}
	if !resp.Loaded {
		e := m.handle.Err
		resp.LoadError = &e
	}
	return resp
}

// Health returns the /health payload, or a load failure carrying the
// recorded error when no model is held.
func (m *Manager) Health() (types.HealthResponse, error) {
	if !m.Ready() {
		return types.HealthResponse{}, ErrLoadFailure(m.handle.Err)
	}
	return types.HealthResponse{Status: "ok", ModelVersion: m.version, GitSHA: m.sha}, nil
}
