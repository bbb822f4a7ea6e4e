// Package fasting tracks a single fast: elapsed time against a target
// duration, and the metabolic state the faster is in at any point of it.
package fasting

const secondsInAnHour = 3600

// MetabolicState is a named phase of a fast keyed by a half-open range of
// elapsed hours [StartHour, EndHour).
type MetabolicState struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	StartHour float64 `json:"start_hour"`
	EndHour   float64 `json:"end_hour"`
}

// Contains reports whether the given number of elapsed hours falls within
// the state.
func (m MetabolicState) Contains(hours float64) bool {
	return hours >= m.StartHour && hours < m.EndHour
}

// States is the ordered table of metabolic states. The ranges are contiguous
// and cover [0, 168). Anything beyond the last range is treated as the last
// state.
var States = []MetabolicState{
	{Name: "Fed State", StartHour: 0, EndHour: 4, Color: "#4ADE80"},
	{Name: "Catabolic State", StartHour: 4, EndHour: 12, Color: "#60A5FA"},
	{Name: "Ketosis", StartHour: 12, EndHour: 18, Color: "#818CF8"},
	{Name: "Deep Ketosis", StartHour: 18, EndHour: 24, Color: "#A78BFA"},
	{Name: "Autophagy", StartHour: 24, EndHour: 72, Color: "#F472B6"},
	{Name: "Deep Autophagy", StartHour: 72, EndHour: 168, Color: "#FB7185"},
}

// Classification is the metabolic state reached after a number of elapsed
// seconds, along with the state that follows it.
type Classification struct {
	Current MetabolicState `json:"current"`
	Next    MetabolicState `json:"next"`
	// SecondsToNext is zero or negative once the final state is reached,
	// since Next is the same as Current there.
	SecondsToNext int64 `json:"seconds_to_next"`
}

// Classify maps elapsed seconds to the current and next metabolic state.
func Classify(elapsedSeconds int64) Classification {
	hours := float64(elapsedSeconds) / secondsInAnHour

	i := stateIndex(hours)

	current := States[i]

	next := current
	if i+1 < len(States) {
		next = States[i+1]
	}

	return Classification{
		Current:       current,
		Next:          next,
		SecondsToNext: int64(next.StartHour*secondsInAnHour) - elapsedSeconds,
	}
}

// stateIndex returns the index of the state containing hours.
func stateIndex(hours float64) int {
	if hours < States[0].StartHour {
		return 0
	}

	for i := range States {
		if States[i].Contains(hours) {
			return i
		}
	}

	return len(States) - 1
}

// StateByName retrieves a metabolic state by its name.
func StateByName(name string) (MetabolicState, bool) {
	for _, s := range States {
		if s.Name == name {
			return s, true
		}
	}

	return MetabolicState{}, false
}

// Deeper reports whether state a comes later in the table than state b.
// Unknown names sort before every known state.
func Deeper(a, b string) bool {
	return rank(a) > rank(b)
}

func rank(name string) int {
	for i := range States {
		if States[i].Name == name {
			return i
		}
	}

	return -1
}
