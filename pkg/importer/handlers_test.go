package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// recorder captures loader and alert calls.
type recorder struct {
	loaded []*models.Competition
	alerts []string
}

func (r *recorder) load(c *models.Competition) { r.loaded = append(r.loaded, c) }
func (r *recorder) alert(msg string)           { r.alerts = append(r.alerts, msg) }

func writeWorkbook(t *testing.T, sheets map[string][][]string, order []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestHandleUploadReadFailure(t *testing.T) {
	for _, source := range []Source{SourceWCIF, SourceXLSX} {
		t.Run(string(source), func(t *testing.T) {
			rec := &recorder{}
			err := HandleUpload(source, iotest.ErrReader(errors.New("disk gone")), rec.load, rec.alert)

			assert.ErrorIs(t, err, ErrReadFailed)
			assert.Empty(t, rec.loaded)
			assert.Equal(t, []string{ReadFailedMessage}, rec.alerts)
		})
	}
}

func TestImportFileMissing(t *testing.T) {
	rec := &recorder{}
	err := ImportFile(filepath.Join(t.TempDir(), "missing.json"), SourceWCIF, rec.load, rec.alert)

	assert.ErrorIs(t, err, ErrReadFailed)
	assert.Empty(t, rec.loaded)
	assert.Len(t, rec.alerts, 1)
}

func TestHandleWCIFUpload(t *testing.T) {
	doc := `{
		"formatVersion": "1.0",
		"id": "WinterOpen2019",
		"name": "Winter Open 2019",
		"shortName": "Winter 2019",
		"schedule": {"startDate": "2019-01-12", "numberOfDays": 1, "venues": []},
		"events": [{"id": "333", "rounds": [], "competitorLimit": 80, "qualification": null, "extensions": []}],
		"persons": [{"registrantId": 1, "name": "Ada Lovelace", "wcaId": null, "countryIso2": "GB",
			"registration": {"eventIds": ["333"], "status": "accepted"}, "assignments": []}]
	}`

	rec := &recorder{}
	require.NoError(t, HandleWCIFUpload(strings.NewReader(doc), rec.load, rec.alert))
	require.Len(t, rec.loaded, 1)
	assert.Empty(t, rec.alerts)

	comp := rec.loaded[0]
	require.NotNil(t, comp.ID)
	assert.Equal(t, "WinterOpen2019", *comp.ID)
	assert.Equal(t, "Winter 2019", comp.ShortName)
	require.Len(t, comp.Events, 1)
	assert.Equal(t, 80, *comp.Events[0].CompetitorLimit)

	// Members that are not modelled survive a round trip.
	out, err := json.Marshal(comp)
	require.NoError(t, err)
	var got, want map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	assert.Equal(t, want["formatVersion"], got["formatVersion"])
	assert.Equal(t, want["schedule"], got["schedule"])
	person := got["persons"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, person, "assignments")
	event := got["events"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, event, "extensions")
}

func TestHandleWCIFUploadMalformed(t *testing.T) {
	rec := &recorder{}
	err := HandleWCIFUpload(strings.NewReader(`{"name": `), rec.load, rec.alert)

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Empty(t, rec.loaded)
	assert.Empty(t, rec.alerts)
}

func TestHandleXLSXUpload(t *testing.T) {
	data := writeWorkbook(t, map[string][][]string{
		RegistrationSheet: registrationRows,
		"333-1":           roundRows("Ada Lovelace", "Alan Turing"),
		"333-2":           roundRows("Alan Turing"),
		"clock-1":         roundRows("Ada Lovelace"),
	}, []string{RegistrationSheet, "333-1", "333-2", "clock-1"})

	rec := &recorder{}
	require.NoError(t, HandleXLSXUpload(bytes.NewReader(data), rec.load, rec.alert))
	require.Len(t, rec.loaded, 1)
	assert.Empty(t, rec.alerts)

	comp := rec.loaded[0]
	assert.Nil(t, comp.ID)
	assert.Equal(t, "Winter Open 2019", comp.Name)
	assert.JSONEq(t, `[]`, string(comp.Schedule))
	require.Len(t, comp.Persons, 2)

	var roundIDs []string
	for _, e := range comp.Events {
		for _, r := range e.Rounds {
			roundIDs = append(roundIDs, r.ID)
		}
	}
	if diff := cmp.Diff([]string{"333-r1", "333-r2", "clock-r1"}, roundIDs); diff != "" {
		t.Errorf("round ids mismatch (-want +got):\n%s", diff)
	}

	first := comp.Events[0].Rounds[0]
	assert.Equal(t, models.FormatMean, first.Format)
	require.Len(t, first.Results, 2)
	assert.Equal(t, 1, first.Results[0].PersonID)
	assert.Equal(t, 1000, first.Results[0].Best)
	assert.Equal(t, 1100, first.Results[0].Average)
}

func TestHandleXLSXUploadMalformed(t *testing.T) {
	t.Run("not a workbook", func(t *testing.T) {
		rec := &recorder{}
		err := HandleXLSXUpload(strings.NewReader("name,country\n"), rec.load, rec.alert)
		assert.ErrorIs(t, err, ErrMalformedInput)
		assert.Empty(t, rec.loaded)
		assert.Empty(t, rec.alerts)
	})

	t.Run("unknown competitor", func(t *testing.T) {
		data := writeWorkbook(t, map[string][][]string{
			RegistrationSheet: registrationRows,
			"333-1":           roundRows("Grace Hopper"),
		}, []string{RegistrationSheet, "333-1"})

		rec := &recorder{}
		err := HandleXLSXUpload(bytes.NewReader(data), rec.load, rec.alert)
		assert.ErrorIs(t, err, ErrUnknownPerson)
		assert.Empty(t, rec.loaded)
	})
}
