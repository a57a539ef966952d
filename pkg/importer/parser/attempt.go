package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// multiBlindUnknownTime is the seconds field used when a multi-blind time is missing.
const multiBlindUnknownTime = 99999

// ParseAttempt converts the displayed text of a single attempt into a WCIF
// attempt result for the given event.
func ParseAttempt(eventID, text string) (int, error) {
	text = strings.TrimSpace(text)
	if v, ok := parseSpecial(text); ok {
		return v, nil
	}

	switch {
	case isFewestMoves(eventID):
		moves, ok := parseInt(text)
		if !ok || moves < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAttempt, text)
		}
		return moves, nil
	case isMultiBlind(eventID):
		return parseMultiBlind(text)
	default:
		return parseCentiseconds(text)
	}
}

// ParseAverage converts the displayed text of an average or mean. Fewest
// Moves means are stored as moves times 100.
func ParseAverage(eventID, text string) (int, error) {
	text = strings.TrimSpace(text)
	if v, ok := parseSpecial(text); ok {
		return v, nil
	}

	if isFewestMoves(eventID) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAttempt, text)
		}
		return int(math.Round(f * 100)), nil
	}
	if isMultiBlind(eventID) {
		return models.AttemptSkipped, nil
	}
	return parseCentiseconds(text)
}

func parseSpecial(text string) (int, bool) {
	switch strings.ToUpper(text) {
	case "":
		return models.AttemptSkipped, true
	case "DNF":
		return models.AttemptDNF, true
	case "DNS":
		return models.AttemptDNS, true
	}
	return 0, false
}

// parseCentiseconds parses "[h:]m:ss.cc", "ss.cc" or "ss" into centiseconds.
// Digits past the hundredths are truncated.
func parseCentiseconds(text string) (int, error) {
	invalid := fmt.Errorf("%w: %q", ErrInvalidAttempt, text)

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, invalid
	}

	secPart := parts[len(parts)-1]
	whole, frac, _ := strings.Cut(secPart, ".")
	seconds, err := strconv.Atoi(whole)
	if err != nil || seconds < 0 {
		return 0, invalid
	}
	if len(parts) > 1 && seconds >= 60 {
		return 0, invalid
	}

	cs := 0
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		} else if len(frac) == 1 {
			frac += "0"
		}
		cs, err = strconv.Atoi(frac)
		if err != nil {
			return 0, invalid
		}
	}

	total := seconds
	multiplier := 60
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, invalid
		}
		total += n * multiplier
		multiplier *= 60
	}

	return total*100 + cs, nil
}

// parseMultiBlind parses "solved/attempted [h:]mm:ss" and packs it as
// 0DDTTTTTMM: DD is 99 minus points, TTTTT the time in seconds and MM the
// number of missed cubes.
func parseMultiBlind(text string) (int, error) {
	invalid := fmt.Errorf("%w: %q", ErrInvalidAttempt, text)

	score, timeText, _ := strings.Cut(text, " ")
	solvedText, attemptedText, ok := strings.Cut(score, "/")
	if !ok {
		return 0, invalid
	}
	solved, err1 := strconv.Atoi(strings.TrimSpace(solvedText))
	attempted, err2 := strconv.Atoi(strings.TrimSpace(attemptedText))
	if err1 != nil || err2 != nil || solved < 0 || attempted < solved {
		return 0, invalid
	}

	missed := attempted - solved
	points := solved - missed
	if points < 0 {
		return models.AttemptDNF, nil
	}

	seconds := multiBlindUnknownTime
	if timeText = strings.TrimSpace(timeText); timeText != "" {
		cs, err := parseCentiseconds(timeText)
		if err != nil {
			return 0, invalid
		}
		seconds = cs / 100
	}

	return (99-points)*10000000 + seconds*100 + missed, nil
}
