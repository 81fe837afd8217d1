package scoring

import "github.com/pfrederiksen/meet-tracker/internal/meet"

// finalistPoolSize bounds the projected field of an upcoming final for
// projection, ceiling, and scenario math.
const finalistPoolSize = 8

// ComputeOptimisticCeiling returns, per team, actual points plus the maximum
// obtainable from every upcoming final assuming that team's projected
// finalists take the best consecutive places. Each team is scored
// independently; the bound deliberately ignores cross-team conflicts, so it
// is loose but never undershoots.
func ComputeOptimisticCeiling(actual map[string]*meet.TeamScore, state *meet.State, gender meet.Gender) map[string]float64 {
	ceilings := make(map[string]float64)

	for i := range state.Events {
		for _, entry := range state.Events[i].Entries {
			if entry.Athlete.Team != "" {
				ceilings[entry.Athlete.Team] = 0
			}
		}
	}
	for team := range ceilings {
		if ts, ok := actual[team]; ok {
			ceilings[team] = ts.ActualPoints
		}
	}

	for _, event := range state.UpcomingFinals(gender) {
		entries := finalistEntries(state, event, finalistPoolSize)
		if len(entries) == 0 {
			continue
		}

		perTeam := make(map[string]int)
		for _, entry := range entries {
			perTeam[entry.Athlete.Team]++
		}
		for team, count := range perTeam {
			if count > scoringPlaces {
				count = scoringPlaces
			}
			var pts float64
			for p := 1; p <= count; p++ {
				pts += pointsFor(p)
			}
			ceilings[team] += pts
		}
	}

	return ceilings
}

// ComputeSeedProjection returns, per team, actual points plus points from a
// tie-aware place assignment of every upcoming final's projected finalists
// ranked by effective seed.
func ComputeSeedProjection(actual map[string]*meet.TeamScore, state *meet.State, gender meet.Gender) map[string]float64 {
	projections := make(map[string]float64)
	for team, ts := range actual {
		projections[team] = ts.ActualPoints
	}

	for _, event := range state.UpcomingFinals(gender) {
		entries := finalistEntries(state, event, finalistPoolSize)
		if len(entries) == 0 {
			continue
		}
		ranked := rankBySeed(event, entries)

		eachTieGroup(event, ranked, func(group []meet.Entry, avg float64) {
			for _, entry := range group {
				projections[entry.Athlete.Team] += avg
			}
		})
	}

	return projections
}
