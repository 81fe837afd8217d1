package scoring

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// ComputeActualScores tallies points from all scoreable finals and complete
// combined events for one gender. Athletes sharing a recorded place split
// the points of the consecutive places they jointly occupy: two tied for 3rd
// take (6+5)/2 = 5.5 each.
func ComputeActualScores(state *meet.State, gender meet.Gender) map[string]*meet.TeamScore {
	scores := make(map[string]*meet.TeamScore)

	get := func(team string) *meet.TeamScore {
		ts, ok := scores[team]
		if !ok {
			ts = &meet.TeamScore{Team: team, Gender: gender}
			scores[team] = ts
		}
		return ts
	}

	for _, event := range state.CompletedFinals(gender) {
		placeGroups := make(map[int][]meet.Athlete)
		for _, entry := range event.Entries {
			a := entry.Athlete
			if a.FinalPlace >= 1 && a.FinalPlace <= scoringPlaces {
				placeGroups[a.FinalPlace] = append(placeGroups[a.FinalPlace], a)
			}
		}

		places := make([]int, 0, len(placeGroups))
		for p := range placeGroups {
			places = append(places, p)
		}
		sort.Ints(places)

		for _, place := range places {
			tied := placeGroups[place]
			n := len(tied)
			var total float64
			for i := 0; i < n; i++ {
				total += pointsFor(place + i)
			}
			split := total / float64(n)
			marker := ""
			if n > 1 {
				marker = "+"
			}
			for _, a := range tied {
				ts := get(a.Team)
				ts.ActualPoints += split
				ts.EventsScored = append(ts.EventsScored,
					fmt.Sprintf("%s (%d%s=%.2fpt)", event.Name, place, marker, split))
			}
		}
	}

	for i := range state.Combined {
		combined := &state.Combined[i]
		if combined.Gender != gender || !combined.Complete() {
			continue
		}
		// Combined events award flat place points; ties are not split on
		// this path (matching provider behavior as observed).
		for _, a := range combined.Athletes {
			if a.FinalPlace >= 1 && a.FinalPlace <= scoringPlaces {
				ts := get(a.Team)
				ts.ActualPoints += pointsFor(a.FinalPlace)
				ts.EventsScored = append(ts.EventsScored,
					fmt.Sprintf("%s (%d)", combined.EventName, a.FinalPlace))
			}
		}
	}

	return scores
}
