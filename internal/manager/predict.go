package manager

import (
	"fmt"
	"strconv"

	"mlserve/internal/model"
	"mlserve/pkg/types"
)

// Predict classifies one feature vector with the held model. The vector
// length is enforced by the type; range and schema checks belong to the
// caller. Without a model it fails with ErrModelUnavailable and does not
// retry loading.
func (m *Manager) Predict(x model.Features) (types.PredictResponse, error) {
	mdl := m.handle.Model
	if mdl == nil {
		return types.PredictResponse{}, ErrModelUnavailable()
	}
	label, err := mdl.Classify(x)
	if err != nil {
		predictionErrors.Inc()
		return types.PredictResponse{}, fmt.Errorf("classify: %w", err)
	}
	predictionsTotal.WithLabelValues(strconv.Itoa(label)).Inc()
	return types.PredictResponse{Prediction: label, ModelVersion: m.version, GitSHA: m.sha}, nil
}
