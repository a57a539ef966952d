package models

import "encoding/json"

// Event is a WCIF event with its rounds.
type Event struct {
	// ID is the WCA event id (e.g. "333", "333mbf").
	ID string `json:"id"`
	// Rounds holds the event rounds in increasing round number.
	Rounds []Round `json:"rounds"`
	// CompetitorLimit is nil when the event has no limit.
	CompetitorLimit *int `json:"competitorLimit"`
	// Qualification is nil when the event has no qualification rule.
	Qualification json.RawMessage            `json:"qualification"`
	Extra         map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes a WCIF event, keeping unknown members in Extra.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	extra, err := decodeWithExtra(data, (*plain)(e))
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}

// MarshalJSON encodes the event including its Extra members.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return encodeWithExtra(plain(e), e.Extra)
}
