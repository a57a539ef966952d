package parser

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// maxNameDistance is the largest edit distance accepted for a fuzzy name match.
const maxNameDistance = 2

// personIndex resolves result rows to registrant ids.
type personIndex struct {
	persons []models.Person
	byWCAID map[string]int
	byName  map[string][]int
}

func newPersonIndex(persons []models.Person) personIndex {
	ix := personIndex{
		persons: persons,
		byWCAID: make(map[string]int),
		byName:  make(map[string][]int),
	}
	for _, p := range persons {
		if p.WCAID != nil {
			ix.byWCAID[strings.ToUpper(*p.WCAID)] = p.RegistrantID
		}
		key := nameKey(p.Name)
		ix.byName[key] = append(ix.byName[key], p.RegistrantID)
	}
	return ix
}

// resolve finds a person by WCA ID, then by exact name, then by the unique
// closest name within maxNameDistance.
func (ix personIndex) resolve(name, wcaID string) (int, error) {
	if wcaID != "" {
		if id, ok := ix.byWCAID[strings.ToUpper(wcaID)]; ok {
			return id, nil
		}
	}

	key := nameKey(name)
	if ids := ix.byName[key]; len(ids) == 1 {
		return ids[0], nil
	}

	best, bestDist, tie := 0, maxNameDistance+1, false
	for _, p := range ix.persons {
		dist := levenshtein.ComputeDistance(key, nameKey(p.Name))
		switch {
		case dist < bestDist:
			best, bestDist, tie = p.RegistrantID, dist, false
		case dist == bestDist:
			tie = true
		}
	}
	if bestDist <= maxNameDistance && !tie {
		return best, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPerson, name)
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
