package manager

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	modelLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mlserve",
			Subsystem: "model",
			Name:      "loaded",
			Help:      "1 if the startup load produced a usable model, 0 otherwise",
		},
	)

	modelLoadSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mlserve",
			Subsystem: "model",
			Name:      "load_seconds",
			Help:      "Wall-clock duration of the startup load attempt",
		},
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlserve",
			Subsystem: "model",
			Name:      "predictions_total",
			Help:      "Predictions served, by returned label",
		},
		[]string{"label"},
	)

	predictionErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mlserve",
			Subsystem: "model",
			Name:      "prediction_errors_total",
			Help:      "Classifier failures on a loaded model",
		},
	)
)

func init() {
	prometheus.MustRegister(modelLoaded, modelLoadSeconds, predictionsTotal, predictionErrors)
}

func recordLoad(h *Handle) {
	if h.Model != nil {
		modelLoaded.Set(1)
	} else {
		modelLoaded.Set(0)
	}
	modelLoadSeconds.Set(h.LoadTime.Seconds())
}
