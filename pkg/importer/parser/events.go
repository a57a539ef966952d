package parser

// EventIDs lists the WCA event ids recognized in Registration headers.
var EventIDs = []string{
	"222", "333", "444", "555", "666", "777",
	"333bf", "333fm", "333oh", "333ft", "333mbf", "333mbo",
	"444bf", "555bf",
	"clock", "minx", "pyram", "skewb", "sq1",
	"magic", "mmagic",
}

var eventIDSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(EventIDs))
	for _, id := range EventIDs {
		set[id] = struct{}{}
	}
	return set
}()

// IsEventID reports whether id is a known WCA event id.
func IsEventID(id string) bool {
	_, ok := eventIDSet[id]
	return ok
}

func isFewestMoves(eventID string) bool {
	return eventID == "333fm"
}

func isMultiBlind(eventID string) bool {
	return eventID == "333mbf" || eventID == "333mbo"
}
