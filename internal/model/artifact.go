package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Artifact is the on-disk description of a fitted estimator. Which fields are
// used depends on Kind.
type Artifact struct {
	Kind      string `json:"kind" yaml:"kind" toml:"kind"`
	Classes   []int  `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
	NFeatures int    `json:"n_features,omitempty" yaml:"n_features,omitempty" toml:"n_features,omitempty"`

	// linear
	Coef      [][]float64 `json:"coef,omitempty" yaml:"coef,omitempty" toml:"coef,omitempty"`
	Intercept []float64   `json:"intercept,omitempty" yaml:"intercept,omitempty" toml:"intercept,omitempty"`

	// tree
	Feature   []int       `json:"feature,omitempty" yaml:"feature,omitempty" toml:"feature,omitempty"`
	Threshold []float64   `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Left      []int       `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Right     []int       `json:"right,omitempty" yaml:"right,omitempty" toml:"right,omitempty"`
	Value     [][]float64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`

	// centroid
	Centroids [][]float64 `json:"centroids,omitempty" yaml:"centroids,omitempty" toml:"centroids,omitempty"`
}

// Format names accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

type builder func(a Artifact) (Classifier, error)

var builders = map[string]builder{
	"linear":   newLinear,
	"tree":     newTree,
	"centroid": newCentroid,
}

// LoadFile reads and decodes the artifact at path. The format is picked from
// the file extension; unknown extensions are sniffed from the content.
func LoadFile(path string) (Classifier, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Decode(b, DetectFormat(path, b))
	if err != nil {
		return nil, err
	}
	return Build(a)
}

// DetectFormat returns the artifact format for path. Anything that is not
// .json, .yaml/.yml or .toml is JSON when it starts with '{' and YAML otherwise.
func DetectFormat(path string, b []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	if t := bytes.TrimSpace(b); len(t) > 0 && t[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses b in the given format.
func Decode(b []byte, format string) (Artifact, error) {
	var a Artifact
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(b, &a)
	case FormatYAML:
		err = yaml.Unmarshal(b, &a)
	case FormatTOML:
		err = toml.Unmarshal(b, &a)
	default:
		return a, fmt.Errorf("unsupported artifact format: %s", format)
	}
	if err != nil {
		return a, fmt.Errorf("decode %s artifact: %w", format, err)
	}
	return a, nil
}

// Build validates a and constructs the matching Classifier.
func Build(a Artifact) (Classifier, error) {
	kind := strings.ToLower(strings.TrimSpace(a.Kind))
	if kind == "" {
		return nil, fmt.Errorf("artifact kind is empty")
	}
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported model kind %q", a.Kind)
	}
	if a.NFeatures != 0 && a.NFeatures != FeatureCount {
		return nil, fmt.Errorf("%s model: expects %d features, server supports %d", kind, a.NFeatures, FeatureCount)
	}
	c, err := b(a)
	if err != nil {
		return nil, fmt.Errorf("%s model: %w", kind, err)
	}
	return c, nil
}

func checkClasses(classes []int, n int) error {
	if len(classes) != 0 && len(classes) != n {
		return fmt.Errorf("classes has %d labels, model has %d classes", len(classes), n)
	}
	return nil
}

func checkRows(name string, rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("%s is empty", name)
	}
	for i, r := range rows {
		if len(r) != FeatureCount {
			return fmt.Errorf("%s[%d] has %d values, want %d", name, i, len(r), FeatureCount)
		}
	}
	return nil
}
