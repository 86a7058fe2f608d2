package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"mlserve/internal/model"
	"mlserve/pkg/types"
)

// requestError is a rejected /predict body.
type requestError struct {
	status int
	reason string
	msg    string
}

var featuresSchemaMsg = fmt.Sprintf("features must be an array of exactly %d numbers", model.FeatureCount)

// predictBody mirrors types.PredictRequest with nullable elements, so a JSON
// null inside features is seen instead of decoding to 0.
type predictBody struct {
	Features []*float64 `json:"features"`
}

// isJSONContentType accepts application/json, application/*+json and a
// missing header, which is read as JSON.
func isJSONContentType(ct string) bool {
	if strings.TrimSpace(ct) == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	if mt == "application/json" {
		return true
	}
	return strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json")
}

// decodePredictRequest enforces the /predict schema. The model is never
// consulted, so a malformed request is rejected the same way whether or not
// a model is loaded.
func decodePredictRequest(r *http.Request) (types.PredictRequest, model.Features, *requestError) {
	var req types.PredictRequest
	var x model.Features
	var body predictBody
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&body); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return req, x, &requestError{status: http.StatusUnprocessableEntity, reason: "schema", msg: featuresSchemaMsg}
		}
		// Oversized bodies land here too; report 400 without size details.
		return req, x, &requestError{status: http.StatusBadRequest, reason: "json", msg: "invalid JSON body"}
	}
	// Exactly one JSON value per body.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, x, &requestError{status: http.StatusBadRequest, reason: "json", msg: "invalid JSON body"}
	}
	if len(body.Features) != model.FeatureCount {
		return req, x, &requestError{status: http.StatusUnprocessableEntity, reason: "length", msg: featuresSchemaMsg}
	}
	req.Features = make([]float64, 0, model.FeatureCount)
	for i, v := range body.Features {
		if v == nil {
			return types.PredictRequest{}, x, &requestError{status: http.StatusUnprocessableEntity, reason: "schema", msg: featuresSchemaMsg}
		}
		x[i] = *v
		req.Features = append(req.Features, *v)
	}
	return req, x, nil
}
