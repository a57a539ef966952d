// Package models defines the WCIF data structures produced by an import.
package models

import "encoding/json"

// UndefinedName is the placeholder name of a competition built from a
// workbook before its Registration sheet is seen.
const UndefinedName = "<undefined>"

// Competition is the WCIF document handed to the loader after an import.
type Competition struct {
	// ID is the WCA competition id. It is nil for workbook imports, which do
	// not carry it.
	ID *string `json:"id"`
	// Name is the full competition name.
	Name string `json:"name"`
	// ShortName is the short competition name.
	ShortName string `json:"shortName"`
	// Schedule is passed through untouched. Workbook imports set an empty list.
	Schedule json.RawMessage `json:"schedule"`
	// Events lists the competition events in sheet order.
	Events []Event `json:"events"`
	// Persons lists every registered competitor.
	Persons []Person `json:"persons"`
	// Extra holds top-level WCIF members this package does not model.
	Extra map[string]json.RawMessage `json:"-"`
}

// NewWorkbookCompetition returns the accumulator a workbook import folds its
// sheets into.
func NewWorkbookCompetition() *Competition {
	return &Competition{
		Name:      UndefinedName,
		ShortName: UndefinedName,
		Schedule:  json.RawMessage("[]"),
		Events:    []Event{},
		Persons:   []Person{},
	}
}

// FindEvent returns the event with the given id, or nil.
func (c *Competition) FindEvent(id string) *Event {
	for i := range c.Events {
		if c.Events[i].ID == id {
			return &c.Events[i]
		}
	}
	return nil
}

// UnmarshalJSON decodes a WCIF competition, keeping unknown members in Extra.
func (c *Competition) UnmarshalJSON(data []byte) error {
	type plain Competition
	extra, err := decodeWithExtra(data, (*plain)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

// MarshalJSON encodes the competition including its Extra members.
func (c Competition) MarshalJSON() ([]byte, error) {
	type plain Competition
	return encodeWithExtra(plain(c), c.Extra)
}
