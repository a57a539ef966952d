// Package output serializes imported competitions.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ToJSON serializes a competition as WCIF JSON.
func ToJSON(comp *models.Competition, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(comp, "", "  ")
	}
	return json.Marshal(comp)
}

// ToYAML serializes a competition as YAML with the WCIF key names. The
// competition goes through JSON first so the json tags and pass-through
// members decide the keys.
func ToYAML(comp *models.Competition) ([]byte, error) {
	data, err := json.Marshal(comp)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Encode serializes a competition in the given format.
func Encode(comp *models.Competition, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(comp, pretty)
	case FormatYAML:
		return ToYAML(comp)
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}
}
