package importer

import (
	"encoding/json"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// ParseWCIF decodes a WCIF JSON document. The document shape is not checked.
func ParseWCIF(data []byte) (*models.Competition, error) {
	var comp models.Competition
	if err := json.Unmarshal(data, &comp); err != nil {
		return nil, NewImportError(SourceWCIF, "", err)
	}
	return &comp, nil
}
