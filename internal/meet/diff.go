package meet

import "sort"

// DetectNewFinals compares the snapshot's completed finals (regular finals
// plus complete combined events) against a caller-supplied set of previously
// known final names. It returns the newly-completed names, sorted, and the
// updated full set for the caller to carry into the next run. The input set
// is not modified.
func DetectNewFinals(state *State, previous map[string]bool) ([]string, map[string]bool) {
	current := make(map[string]bool)
	for i := range state.Events {
		e := &state.Events[i]
		if e.Round == RoundFinal && e.Status == StatusFinal {
			current[e.Name] = true
		}
	}
	for i := range state.Combined {
		if state.Combined[i].Complete() {
			current[state.Combined[i].EventName] = true
		}
	}

	var fresh []string
	for name := range current {
		if !previous[name] {
			fresh = append(fresh, name)
		}
	}
	sort.Strings(fresh)

	return fresh, current
}
