package types

// PredictRequest is the body accepted by POST /predict.
type PredictRequest struct {
	// Feature vector; exactly four numbers.
	// example: [5.1, 3.5, 1.4, 0.2]
	Features []float64 `json:"features" example:"5.1,3.5,1.4,0.2"`
}

// PredictResponse is returned by POST /predict.
type PredictResponse struct {
	// Class label produced by the model.
	// example: 1
	Prediction int `json:"prediction" example:"1"`
	// Configured model version label.
	// example: v1
	ModelVersion string `json:"model_version" example:"v1"`
	// Source revision the server was built from.
	// example: abc123
	GitSHA string `json:"git_sha" example:"abc123"`
}

// HealthResponse is returned by GET /health when a model is loaded.
type HealthResponse struct {
	// example: ok
	Status string `json:"status" example:"ok"`
	// example: v1
	ModelVersion string `json:"model_version" example:"v1"`
	// example: abc123
	GitSHA string `json:"git_sha" example:"abc123"`
}

// ModelInfoResponse is returned by GET /model-info.
type ModelInfoResponse struct {
	// Configured artifact path.
	// example: model.pkl
	ModelPath string `json:"model_path" example:"model.pkl"`
	// example: v1
	ModelVersion string `json:"model_version" example:"v1"`
	// example: abc123
	GitSHA string `json:"git_sha" example:"abc123"`
	// Whether the startup load produced a usable model.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
	// Load failure description; null when the model loaded.
	LoadError *string `json:"load_error"`
	// Wall-clock duration of the startup load attempt in milliseconds.
	// example: 12
	LoadTimeMS int64 `json:"load_time_ms" example:"12"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Same text as Error, for clients that read detail.
	// example: invalid JSON body
	Detail string `json:"detail,omitempty" example:"invalid JSON body"`
}
