package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func scrape(t *testing.T, h http.Handler) []byte {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", w.Code)
	}
	return w.Body.Bytes()
}

// TestMetrics_RoutePatternAndValidation verifies request counters use the chi
// route pattern and rejected bodies are counted by reason.
func TestMetrics_RoutePatternAndValidation(t *testing.T) {
	h := NewMux(&mockService{ready: true})
	postPredict(t, h, `{"features":[1,2,3]}`)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/model-info", nil))

	body := scrape(t, h)
	for _, want := range []string{
		`mlserve_http_requests_total{method="GET",path="/model-info",status="200"}`,
		`mlserve_http_requests_total{method="POST",path="/predict",status="422"}`,
		`mlserve_http_validation_failures_total{reason="length"}`,
	} {
		if !bytes.Contains(body, []byte(want)) {
			t.Fatalf("missing %s in metrics output", want)
		}
	}
}

func TestMetricsMiddleware_FallsBackToPath(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	MetricsMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plain", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status=%d", rr.Code)
	}
	body := scrape(t, NewMux(&mockService{}))
	if !bytes.Contains(body, []byte(`path="/plain",status="418"`)) {
		t.Fatalf("expected raw path label in metrics output")
	}
}
