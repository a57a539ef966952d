package parser

import (
	"strings"
	"time"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// Default Registration columns, used when the header does not name them.
const (
	colRegistrantID = 0
	colName         = 1
	colCountry      = 2
	colWCAID        = 3
	colBirthdate    = 4
	colGender       = 5
)

var birthdateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
}

// PersonsFromRegistration builds the WCIF persons of a Registration sheet.
// Every row after the header with a non-empty name is a person.
func PersonsFromRegistration(rows [][]string) ([]models.Person, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	h := findHeader(rows)
	idCol := h.column(colRegistrantID, "no", "#", "id")
	nameCol := h.column(colName, "name")
	countryCol := h.column(colCountry, "country", "citizen of")
	wcaIDCol := h.column(colWCAID, "wca id", "wcaid", "wca_id")
	birthCol := h.column(colBirthdate, "birth date", "birthdate", "date of birth")
	genderCol := h.column(colGender, "gender", "sex")

	// Event columns are the header cells naming a WCA event id.
	eventCols := make(map[int]string)
	for col, label := range h.labels {
		if IsEventID(label) {
			eventCols[col] = label
		}
	}

	persons := []models.Person{}
	for i, row := range h.dataRows(rows) {
		name := cell(row, nameCol)
		if name == "" {
			continue
		}

		registrantID, ok := parseInt(cell(row, idCol))
		if !ok {
			registrantID = i + 1
		}

		eventIDs := []string{}
		for col := 0; col < h.width(); col++ {
			eventID, isEvent := eventCols[col]
			if isEvent && cell(row, col) == "1" {
				eventIDs = append(eventIDs, eventID)
			}
		}

		persons = append(persons, models.Person{
			RegistrantID: registrantID,
			Name:         name,
			WCAID:        optional(strings.ToUpper(cell(row, wcaIDCol))),
			CountryISO2:  cell(row, countryCol),
			Gender:       normalizeGender(cell(row, genderCol)),
			Birthdate:    normalizeBirthdate(cell(row, birthCol)),
			Registration: &models.Registration{
				EventIDs: eventIDs,
				Status:   models.RegistrationAccepted,
			},
		})
	}

	return persons, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func normalizeGender(s string) string {
	if s == "" {
		return ""
	}
	switch g := strings.ToLower(s[:1]); g {
	case "m", "f":
		return g
	default:
		return "o"
	}
}

// normalizeBirthdate rewrites known date layouts as YYYY-MM-DD and keeps
// anything else as displayed.
func normalizeBirthdate(s string) string {
	for _, layout := range birthdateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
