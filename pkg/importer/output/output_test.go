package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

func sampleCompetition() *models.Competition {
	comp := models.NewWorkbookCompetition()
	comp.Name = "Winter Open 2019"
	comp.ShortName = comp.Name
	comp.Events = append(comp.Events, models.Event{ID: "333", Rounds: []models.Round{}})
	return comp
}

func TestToJSON(t *testing.T) {
	compact, err := ToJSON(sampleCompetition(), false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(compact), `"shortName":"Winter Open 2019"`)
	assert.Contains(t, string(compact), `"id":null`)

	pretty, err := ToJSON(sampleCompetition(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"name\": \"Winter Open 2019\"")
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleCompetition())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Winter Open 2019", doc["shortName"])
	assert.Nil(t, doc["id"])
	events := doc["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "333", events[0].(map[string]interface{})["id"])
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format  Format
		prefix  string
		wantErr bool
	}{
		{FormatJSON, "{", false},
		{"", "{", false},
		{FormatYAML, "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		data, err := Encode(sampleCompetition(), tt.format, false)
		if tt.wantErr {
			assert.Error(t, err, "format %q", tt.format)
			continue
		}
		require.NoError(t, err, "format %q", tt.format)
		assert.True(t, strings.HasPrefix(string(data), tt.prefix), "format %q", tt.format)
	}
}
