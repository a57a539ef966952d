package parser

import (
	"encoding/json"
	"fmt"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// Default round sheet columns, used when the header does not name them.
const (
	colPosition     = 0
	colResultName   = 1
	colResultWCAID  = 3
	colFirstAttempt = 4
)

// RoundFromSheet builds round number of eventID from a results sheet.
// Names are resolved against persons, which must come from the Registration
// sheet.
func RoundFromSheet(persons []models.Person, eventID string, number int, rows [][]string) (models.Round, error) {
	if len(rows) == 0 {
		return models.Round{}, ErrEmptySheet
	}

	h := findHeader(rows)
	positionCol := h.column(colPosition, "position", "pos", "place", "#")
	nameCol := h.column(colResultName, "name")
	wcaIDCol := h.column(colResultWCAID, "wca id", "wcaid", "wca_id")

	firstAttempt := colFirstAttempt
	if wcaIDCol >= 0 && wcaIDCol+1 > firstAttempt {
		firstAttempt = wcaIDCol + 1
	}
	bestCol := h.columnFrom(firstAttempt, -1, "best")
	averageCol := h.columnFrom(firstAttempt, -1, "average", "avg", "mean")
	meanCol := h.columnFrom(firstAttempt, -1, "mean")

	lastAttempt := h.width()
	for _, col := range []int{bestCol, averageCol} {
		if col >= 0 && col < lastAttempt {
			lastAttempt = col
		}
	}
	attemptCount := lastAttempt - firstAttempt
	if attemptCount < 1 {
		return models.Round{}, fmt.Errorf("%w: no attempt columns", ErrInvalidAttempt)
	}

	ix := newPersonIndex(persons)
	results := []models.Result{}
	for i, row := range h.dataRows(rows) {
		name := cell(row, nameCol)
		if name == "" {
			continue
		}

		personID, err := ix.resolve(name, cell(row, wcaIDCol))
		if err != nil {
			return models.Round{}, err
		}

		result, err := parseResultRow(eventID, row, firstAttempt, lastAttempt, bestCol, averageCol)
		if err != nil {
			return models.Round{}, fmt.Errorf("row %d (%s): %w", h.row+i+2, name, err)
		}
		result.PersonID = personID

		ranking, ok := parseInt(cell(row, positionCol))
		if !ok {
			ranking = len(results) + 1
		}
		result.Ranking = &ranking

		results = append(results, result)
	}

	return models.Round{
		ID:               models.RoundID(eventID, number),
		Format:           formatFor(attemptCount, meanCol >= 0),
		ScrambleSetCount: 1,
		Results:          results,
		ScrambleSets:     []json.RawMessage{},
	}, nil
}

func parseResultRow(eventID string, row []string, first, last, bestCol, averageCol int) (models.Result, error) {
	attempts := make([]models.Attempt, 0, last-first)
	for col := first; col < last; col++ {
		value, err := ParseAttempt(eventID, cell(row, col))
		if err != nil {
			return models.Result{}, err
		}
		attempts = append(attempts, models.Attempt{Result: value})
	}
	// Skipped attempts after a missed cutoff are not listed.
	for len(attempts) > 0 && attempts[len(attempts)-1].Result == models.AttemptSkipped {
		attempts = attempts[:len(attempts)-1]
	}

	result := models.Result{Attempts: attempts}

	if bestCol >= 0 {
		best, err := ParseAttempt(eventID, cell(row, bestCol))
		if err != nil {
			return models.Result{}, err
		}
		result.Best = best
	} else {
		result.Best = bestOf(attempts)
	}

	if averageCol >= 0 {
		average, err := ParseAverage(eventID, cell(row, averageCol))
		if err != nil {
			return models.Result{}, err
		}
		result.Average = average
	}

	return result, nil
}

// bestOf returns the smallest successful attempt, DNF when every taken
// attempt failed, and skipped when none were taken.
func bestOf(attempts []models.Attempt) int {
	best := models.AttemptSkipped
	for _, a := range attempts {
		switch {
		case a.Result > 0:
			if best <= 0 || a.Result < best {
				best = a.Result
			}
		case a.Result < 0 && best == models.AttemptSkipped:
			best = models.AttemptDNF
		}
	}
	return best
}

func formatFor(attemptCount int, hasMean bool) models.Format {
	switch {
	case attemptCount == 1:
		return models.FormatBestOf1
	case attemptCount == 2:
		return models.FormatBestOf2
	case attemptCount == 3 && hasMean:
		return models.FormatMean
	case attemptCount == 3:
		return models.FormatBestOf3
	default:
		return models.FormatAverage
	}
}
