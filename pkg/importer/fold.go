package importer

import (
	"strings"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/parser"
)

// LoadSheetIntoWCIF folds one worksheet into the competition accumulator.
//
// The Registration sheet seeds the competition name and persons, so it must
// come first. Any other sheet is a round: the part of its name before the
// first "-" is the event id, and each sheet of an event adds the next round.
// Cubecomps numbers its round sheets while Cubing China uses round type ids;
// only sheet order sets the round number.
func LoadSheetIntoWCIF(comp *models.Competition, name string, rows [][]string) error {
	if name == RegistrationSheet {
		if len(rows) == 0 {
			return NewImportError(SourceXLSX, name, parser.ErrEmptySheet)
		}
		comp.Name = models.CellAt(rows, 0, 0)
		comp.ShortName = comp.Name
		persons, err := parser.PersonsFromRegistration(rows)
		if err != nil {
			return NewImportError(SourceXLSX, name, err)
		}
		comp.Persons = persons
		return nil
	}

	eventID, _, _ := strings.Cut(name, EventDelimiter)
	event := comp.FindEvent(eventID)
	if event == nil {
		comp.Events = append(comp.Events, models.Event{
			ID:     eventID,
			Rounds: []models.Round{},
		})
		event = &comp.Events[len(comp.Events)-1]
	}

	round, err := parser.RoundFromSheet(comp.Persons, eventID, len(event.Rounds)+1, rows)
	if err != nil {
		return NewImportError(SourceXLSX, name, err)
	}
	event.Rounds = append(event.Rounds, round)
	return nil
}
