package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

func testPersons(t *testing.T) []models.Person {
	t.Helper()
	persons, err := PersonsFromRegistration(registrationRows(
		[]string{"1", "Ada Lovelace", "GB", "2010LOVE01"},
		[]string{"2", "Alan Turing", "GB"},
		[]string{"3", "Grace Hopper", "US"},
	))
	require.NoError(t, err)
	return persons
}

func intPtr(i int) *int { return &i }

func TestRoundFromSheetAverage(t *testing.T) {
	rows := [][]string{
		{"3x3x3 Cube - First round"},
		{"Position", "Name", "Country", "WCA id", "1", "2", "3", "4", "5", "Best", "Average"},
		{"1", "Grace Hopper", "US", "", "9.00", "10.00", "11.00", "12.00", "DNF", "9.00", "11.00"},
		{"2", "Ada Lovelace", "GB", "2010love01", "12.00", "DNF", "13.50", "14.00", "1:00.00", "12.00", "15.83"},
		{"3", "Alan Turning", "GB", "", "20.00", "21.00", "", "", "", "20.00", ""},
	}

	round, err := RoundFromSheet(testPersons(t), "333", 1, rows)
	require.NoError(t, err)

	want := models.Round{
		ID:               "333-r1",
		Format:           models.FormatAverage,
		ScrambleSetCount: 1,
		Results: []models.Result{
			{
				PersonID: 3, Ranking: intPtr(1),
				Attempts: []models.Attempt{{Result: 900}, {Result: 1000}, {Result: 1100}, {Result: 1200}, {Result: -1}},
				Best:     900, Average: 1100,
			},
			{
				PersonID: 1, Ranking: intPtr(2),
				Attempts: []models.Attempt{{Result: 1200}, {Result: -1}, {Result: 1350}, {Result: 1400}, {Result: 6000}},
				Best:     1200, Average: 1583,
			},
			{
				PersonID: 2, Ranking: intPtr(3),
				Attempts: []models.Attempt{{Result: 2000}, {Result: 2100}},
				Best:     2000, Average: 0,
			},
		},
		ScrambleSets: nil,
	}

	if diff := cmp.Diff(want, round, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".ScrambleSets"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("RoundFromSheet() mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, round.ScrambleSets)
	assert.Empty(t, round.ScrambleSets)
}

func TestRoundFromSheetFormats(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   models.Format
	}{
		{"best of 1", []string{"Position", "Name", "Country", "WCA id", "1", "Best"}, models.FormatBestOf1},
		{"best of 2", []string{"Position", "Name", "Country", "WCA id", "1", "2", "Best"}, models.FormatBestOf2},
		{"best of 3", []string{"Position", "Name", "Country", "WCA id", "1", "2", "3", "Best"}, models.FormatBestOf3},
		{"mean of 3", []string{"Position", "Name", "Country", "WCA id", "1", "2", "3", "Best", "Mean"}, models.FormatMean},
		{"average of 5", []string{"Position", "Name", "Country", "WCA id", "1", "2", "3", "4", "5", "Best", "Average"}, models.FormatAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]string{{"title"}, tt.header}
			round, err := RoundFromSheet(nil, "333", 2, rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, round.Format)
			assert.Equal(t, "333-r2", round.ID)
			assert.Empty(t, round.Results)
		})
	}
}

func TestRoundFromSheetFewestMoves(t *testing.T) {
	rows := [][]string{
		{"Fewest Moves - Final"},
		{"Position", "Name", "Country", "WCA id", "1", "2", "3", "Best", "Mean"},
		{"1", "Alan Turing", "GB", "", "28", "30", "33", "28", "30.33"},
	}

	round, err := RoundFromSheet(testPersons(t), "333fm", 1, rows)
	require.NoError(t, err)
	require.Len(t, round.Results, 1)
	assert.Equal(t, models.FormatMean, round.Format)
	assert.Equal(t, 28, round.Results[0].Best)
	assert.Equal(t, 3033, round.Results[0].Average)
}

func TestRoundFromSheetComputesBestWithoutColumn(t *testing.T) {
	rows := [][]string{
		{"4x4x4 Blindfolded - Final"},
		{"Position", "Name", "Country", "WCA id", "1", "2", "3"},
		{"", "Ada Lovelace", "GB", "", "DNF", "3:10.00", "DNS"},
		{"", "Alan Turing", "GB", "", "DNF", "DNF", "DNS"},
	}

	round, err := RoundFromSheet(testPersons(t), "444bf", 1, rows)
	require.NoError(t, err)
	require.Len(t, round.Results, 2)
	assert.Equal(t, 19000, round.Results[0].Best)
	assert.Equal(t, -1, round.Results[1].Best)
	// Blank positions fall back to the row ordinal.
	assert.Equal(t, 1, *round.Results[0].Ranking)
	assert.Equal(t, 2, *round.Results[1].Ranking)
}

func TestRoundFromSheetErrors(t *testing.T) {
	t.Run("empty sheet", func(t *testing.T) {
		_, err := RoundFromSheet(nil, "333", 1, nil)
		assert.ErrorIs(t, err, ErrEmptySheet)
	})

	t.Run("unknown person", func(t *testing.T) {
		rows := [][]string{
			{"title"},
			{"Position", "Name", "Country", "WCA id", "1", "Best"},
			{"1", "Somebody Else", "FR", "", "10.00", "10.00"},
		}
		_, err := RoundFromSheet(testPersons(t), "333", 1, rows)
		assert.ErrorIs(t, err, ErrUnknownPerson)
	})

	t.Run("invalid attempt", func(t *testing.T) {
		rows := [][]string{
			{"title"},
			{"Position", "Name", "Country", "WCA id", "1", "Best"},
			{"1", "Ada Lovelace", "GB", "", "quick", "10.00"},
		}
		_, err := RoundFromSheet(testPersons(t), "333", 1, rows)
		assert.ErrorIs(t, err, ErrInvalidAttempt)
	})
}
