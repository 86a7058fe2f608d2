package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"mlserve/internal/manager"
	"mlserve/pkg/types"
)

const centroidModel = `{"kind":"centroid","n_features":4,"centroids":[[0,0,0,0],[1,2,3,4],[9,9,9,9]]}`

func TestE2E_PredictAfterSuccessfulLoad(t *testing.T) {
	p := writeModel(t, "model.json", centroidModel)
	srv, _ := newServer(t, manager.ManagerConfig{ModelPath: p, ModelVersion: "v1", GitSHA: "abc123"})

	resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(`{"features":[1.0,2.0,3.0,4.0]}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}
	var pr types.PredictResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		t.Fatalf("json: %v", err)
	}
	if pr != (types.PredictResponse{Prediction: 1, ModelVersion: "v1", GitSHA: "abc123"}) {
		t.Fatalf("unexpected response: %+v", pr)
	}

	resp, body = httpGet(t, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"status":"ok"`) {
		t.Fatalf("health status=%d body=%s", resp.StatusCode, body)
	}
	resp, _ = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestE2E_MissingArtifactDegradedStart(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "model.pkl")
	srv, _ := newServer(t, manager.ManagerConfig{ModelPath: missing})

	resp, body := httpGet(t, srv.URL+"/health")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("health status=%d", resp.StatusCode)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.HasPrefix(er.Error, "Model failed to load: ") || !strings.Contains(er.Error, "model.pkl") {
		t.Fatalf("unexpected health error: %q", er.Error)
	}

	resp, body = httpGet(t, srv.URL+"/model-info")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("model-info status=%d", resp.StatusCode)
	}
	var info types.ModelInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("json: %v", err)
	}
	if info.Loaded || info.LoadError == nil || info.LoadTimeMS < 0 || info.ModelPath != missing {
		t.Fatalf("unexpected model info: %+v", info)
	}

	resp, body = httpPostJSON(t, srv.URL+"/predict", []byte(`{"features":[1,2,3,4]}`))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("predict status=%d", resp.StatusCode)
	}
	if strings.Contains(string(body), "model.pkl") || strings.Contains(string(body), "no such file") {
		t.Fatalf("predict leaked load detail: %s", body)
	}
}

func TestE2E_CorruptArtifact(t *testing.T) {
	p := writeModel(t, "model.pkl", "\x80\x04\x95 not a model")
	srv, mgr := newServer(t, manager.ManagerConfig{ModelPath: p})
	if mgr.Ready() {
		t.Fatalf("corrupt artifact must not load")
	}
	resp, _ := httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestE2E_RepeatedQueriesAreStable(t *testing.T) {
	srv, _ := newServer(t, manager.ManagerConfig{ModelPath: filepath.Join(t.TempDir(), "absent.json")})
	var first string
	for i := 0; i < 5; i++ {
		_, body := httpGet(t, srv.URL+"/model-info")
		if i == 0 {
			first = string(body)
			continue
		}
		if string(body) != first {
			t.Fatalf("model-info changed: %s vs %s", body, first)
		}
	}
}

func TestE2E_SchemaRejectedRegardlessOfLoadState(t *testing.T) {
	loaded, _ := newServer(t, manager.ManagerConfig{ModelPath: writeModel(t, "model.json", centroidModel)})
	unloaded, _ := newServer(t, manager.ManagerConfig{ModelPath: filepath.Join(t.TempDir(), "absent.json")})
	for _, base := range []string{loaded.URL, unloaded.URL} {
		for _, b := range []string{`{"features":[1,2,3]}`, `{"features":[1,2,3,4,5]}`, `{"features":[1,2,3,null]}`, `{"features":[null,null,null,null]}`} {
			resp, _ := httpPostJSON(t, base+"/predict", []byte(b))
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("%s %s: status=%d", base, b, resp.StatusCode)
			}
		}
	}
}

func TestE2E_PredictWithoutContentType(t *testing.T) {
	srv, _ := newServer(t, manager.ManagerConfig{ModelPath: writeModel(t, "model.json", centroidModel), ModelVersion: "v1", GitSHA: "abc123"})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/predict", strings.NewReader(`{"features":[1,2,3,4]}`))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var pr types.PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pr.Prediction != 1 {
		t.Fatalf("prediction=%d", pr.Prediction)
	}
}

func TestE2E_ConcurrentPredictions(t *testing.T) {
	srv, _ := newServer(t, manager.ManagerConfig{ModelPath: writeModel(t, "model.yaml", "kind: centroid\ncentroids:\n  - [0, 0, 0, 0]\n  - [1, 2, 3, 4]\n")})
	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader(`{"features":[1,2,3,4]}`))
			if err != nil {
				errs <- err.Error()
				return
			}
			defer resp.Body.Close()
			var pr types.PredictResponse
			if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil || resp.StatusCode != http.StatusOK || pr.Prediction != 1 {
				errs <- fmt.Sprintf("status=%d prediction=%d err=%v", resp.StatusCode, pr.Prediction, err)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("unexpected response: %s", e)
	}
}
