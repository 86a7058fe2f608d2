package manager

import (
	"time"

	"mlserve/internal/model"
)

// Loader deserializes the model artifact at path.
type Loader func(path string) (model.Classifier, error)

// ManagerConfig encapsulates all inputs of Load. ModelPath, ModelVersion and
// GitSHA are used as-is, empty included; defaults belong to internal/config.
type ManagerConfig struct {
	ModelPath    string
	ModelVersion string
	GitSHA       string
	// Loader defaults to model.LoadFile.
	Loader Loader
	// Events receives model_loaded / model_load_failed. Optional.
	Events EventPublisher

	now func() time.Time
}

func (c ManagerConfig) withDefaults() ManagerConfig {
	if c.Loader == nil {
		c.Loader = model.LoadFile
	}
	if c.Events == nil {
		c.Events = noopPublisher{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}
