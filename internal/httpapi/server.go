package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mlserve/internal/model"
	"mlserve/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	Describe() types.ModelInfoResponse
	Health() (types.HealthResponse, error)
	Predict(x model.Features) (types.PredictResponse, error)
}

// NewMux builds the router. svc is only read; handlers never mutate it.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health", healthHandler(svc))
	r.Get("/model-info", modelInfoHandler(svc))
	r.Post("/predict", predictHandler(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("unavailable"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// healthHandler godoc
// @Summary      Model health
// @Description  Reports ok when the startup load produced a model. Otherwise returns 500 with the load error.
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /health [get]
func healthHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		resp, err := svc.Health()
		if err != nil {
			// Load error detail is part of the /health body.
			status := statusFor(err)
			writeJSONError(w, status, err.Error())
			logRequestEnd(r, lvl, status, start, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		logRequestEnd(r, lvl, http.StatusOK, start, nil)
	}
}

// modelInfoHandler godoc
// @Summary      Model load state
// @Description  Path, labels, load outcome and load duration. Never fails.
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.ModelInfoResponse
// @Router       /model-info [get]
func modelInfoHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		writeJSON(w, http.StatusOK, svc.Describe())
		logRequestEnd(r, requestLogLevel(r), http.StatusOK, start, nil)
	}
}

// predictHandler godoc
// @Summary      Classify one feature vector
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.PredictRequest  true  "Feature vector"
// @Success      200      {object}  types.PredictResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /predict [post]
func predictHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		if !isJSONContentType(r.Header.Get("Content-Type")) {
			incValidationFailure("content_type")
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			logRequestEnd(r, lvl, http.StatusUnsupportedMediaType, start, nil)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		req, x, rerr := decodePredictRequest(r)
		if rerr != nil {
			incValidationFailure(rerr.reason)
			writeJSONError(w, rerr.status, rerr.msg)
			logRequestEnd(r, lvl, rerr.status, start, nil)
			return
		}
		resp, err := svc.Predict(x)
		if err != nil {
			// No internal detail in the body, unlike /health.
			writeJSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			logRequestEnd(r, lvl, http.StatusInternalServerError, start, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		logPrediction(r, lvl, req.Features, resp.Prediction)
		logRequestEnd(r, lvl, http.StatusOK, start, nil)
	}
}
