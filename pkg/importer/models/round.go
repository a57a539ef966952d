package models

import (
	"encoding/json"
	"fmt"
)

// Format is the WCIF round format identifier.
type Format string

const (
	FormatBestOf1 Format = "1"
	FormatBestOf2 Format = "2"
	FormatBestOf3 Format = "3"
	FormatAverage Format = "a"
	FormatMean    Format = "m"
)

// Round is a WCIF round with its results.
type Round struct {
	// ID is "<eventId>-r<number>".
	ID     string `json:"id"`
	Format Format `json:"format"`
	// TimeLimit, Cutoff and AdvancementCondition are passed through untouched.
	TimeLimit            json.RawMessage `json:"timeLimit"`
	Cutoff               json.RawMessage `json:"cutoff"`
	AdvancementCondition json.RawMessage `json:"advancementCondition"`
	// ScrambleSetCount is the number of scramble groups used in the round.
	ScrambleSetCount int `json:"scrambleSetCount"`
	// Results holds one entry per competitor.
	Results []Result `json:"results"`
	// ScrambleSets is empty after an import; sets are matched later.
	ScrambleSets []json.RawMessage           `json:"scrambleSets"`
	Extra        map[string]json.RawMessage `json:"-"`
}

// RoundID builds the WCIF round id for an event and round number.
func RoundID(eventID string, number int) string {
	return fmt.Sprintf("%s-r%d", eventID, number)
}

// UnmarshalJSON decodes a WCIF round, keeping unknown members in Extra.
func (r *Round) UnmarshalJSON(data []byte) error {
	type plain Round
	extra, err := decodeWithExtra(data, (*plain)(r))
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

// MarshalJSON encodes the round including its Extra members.
func (r Round) MarshalJSON() ([]byte, error) {
	type plain Round
	return encodeWithExtra(plain(r), r.Extra)
}
