package domain

// DistanceSource resolves the road distance in km between two stops.
// Implementations store each unordered pair once; callers must not assume a
// direction.
type DistanceSource interface {
	Lookup(a, b Stop) (km float64, ok bool)
}

// StaticDistanceTable is a DistanceSource backed by a fixed map. Lookups are
// bidirectional regardless of which direction was registered.
type StaticDistanceTable struct {
	distances map[[2]Stop]float64
}

// NewStaticDistanceTable builds a table from nested from/to/km entries.
func NewStaticDistanceTable(entries map[Stop]map[Stop]float64) *StaticDistanceTable {
	t := &StaticDistanceTable{distances: make(map[[2]Stop]float64)}
	for from, tos := range entries {
		for to, km := range tos {
			t.distances[[2]Stop{from, to}] = km
		}
	}
	return t
}

// Lookup returns the distance for (a,b), trying (b,a) as a fallback.
func (t *StaticDistanceTable) Lookup(a, b Stop) (float64, bool) {
	if km, ok := t.distances[[2]Stop{a, b}]; ok {
		return km, true
	}
	if km, ok := t.distances[[2]Stop{b, a}]; ok {
		return km, true
	}
	return 0, false
}

// DefaultDistanceTable returns the intercity distances used by the trip
// planner. Each pair is stored once.
func DefaultDistanceTable() *StaticDistanceTable {
	return NewStaticDistanceTable(map[Stop]map[Stop]float64{
		"varanasi": {
			"sarnath":     12,
			"chunar":      45,
			"vindhyachal": 70,
			"prayagraj":   120,
			"ayodhya":     220,
			"bodhgaya":    250,
			"lucknow":     305,
		},
		"prayagraj": {
			"ayodhya":    165,
			"chitrakoot": 130,
		},
		"ayodhya": {
			"lucknow": 135,
		},
	})
}
