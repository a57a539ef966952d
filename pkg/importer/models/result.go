package models

// Special attempt result values.
const (
	// AttemptSkipped marks an attempt that was not taken (e.g. after a cutoff).
	AttemptSkipped = 0
	// AttemptDNF marks a did-not-finish attempt.
	AttemptDNF = -1
	// AttemptDNS marks a did-not-start attempt.
	AttemptDNS = -2
)

// Attempt is a single WCIF attempt.
type Attempt struct {
	// Result is the WCIF attempt result: centiseconds for timed events, the
	// move count for Fewest Moves, the packed value for Multiple Blindfolded.
	Result int `json:"result"`
	// Reconstruction is never filled by an import.
	Reconstruction *string `json:"reconstruction"`
}

// Result is one competitor's result in a round.
type Result struct {
	// PersonID is the registrantId of the competitor.
	PersonID int `json:"personId"`
	// Ranking is the competitor position in the round.
	Ranking  *int      `json:"ranking"`
	Attempts []Attempt `json:"attempts"`
	Best     int       `json:"best"`
	Average  int       `json:"average"`
}
