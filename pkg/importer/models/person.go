package models

import "encoding/json"

// RegistrationAccepted is the status given to every imported registration.
const RegistrationAccepted = "accepted"

// Registration holds the events a person registered for.
type Registration struct {
	EventIDs []string `json:"eventIds"`
	Status   string   `json:"status"`
}

// Person is a WCIF person.
type Person struct {
	// RegistrantID is the competition-local id results refer to.
	RegistrantID int    `json:"registrantId"`
	Name         string `json:"name"`
	// WCAID is nil for newcomers.
	WCAID        *string                    `json:"wcaId"`
	CountryISO2  string                     `json:"countryIso2"`
	Gender       string                     `json:"gender,omitempty"`
	Birthdate    string                     `json:"birthdate,omitempty"`
	Registration *Registration              `json:"registration"`
	Extra        map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes a WCIF person, keeping unknown members in Extra.
func (p *Person) UnmarshalJSON(data []byte) error {
	type plain Person
	extra, err := decodeWithExtra(data, (*plain)(p))
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// MarshalJSON encodes the person including its Extra members.
func (p Person) MarshalJSON() ([]byte, error) {
	type plain Person
	return encodeWithExtra(plain(p), p.Extra)
}
