package scoring

import "github.com/pfrederiksen/meet-tracker/internal/meet"

// AthleteScenario is one athlete's line in a scenario breakdown.
type AthleteScenario struct {
	Athlete        string  `json:"athlete"`
	SeedMark       string  `json:"seed_mark"`
	ProjectedPlace int     `json:"proj_place"`
	SeedPts        float64 `json:"seed_pts"`
}

// EventScenario is the per-event slice of a team scenario.
type EventScenario struct {
	Event        string            `json:"event"`
	Athletes     []AthleteScenario `json:"athletes"`
	SeedsHoldPts float64           `json:"seeds_hold_pts"`
	BestCasePts  float64           `json:"best_case_pts"`
	WorstCasePts float64           `json:"worst_case_pts"`
}

// TeamScenario holds the three projection scenarios for one team.
type TeamScenario struct {
	Team      string          `json:"team"`
	Current   float64         `json:"current"`
	SeedsHold float64         `json:"seeds_hold"`
	BestCase  float64         `json:"best_case"`
	WorstCase float64         `json:"worst_case"`
	Breakdown []EventScenario `json:"breakdown"`
}

// ComputeTeamScenarios builds three outcomes for one team over the remaining
// finals, using the same finalist pools and seed ranking as projection and
// ceiling: seeds hold exactly (tie-aware seed-rank points), best case (the
// team's finalists take the best consecutive places), and worst case (all of
// them finish out of the points).
func ComputeTeamScenarios(team string, actual map[string]*meet.TeamScore, state *meet.State, gender meet.Gender) *TeamScenario {
	base := 0.0
	if ts, ok := actual[team]; ok {
		base = ts.ActualPoints
	}

	scenario := &TeamScenario{
		Team:      team,
		Current:   base,
		SeedsHold: base,
		BestCase:  base,
		WorstCase: base,
	}

	for _, event := range state.UpcomingFinals(gender) {
		finalists := finalistEntries(state, event, finalistPoolSize)
		if len(finalists) == 0 {
			continue
		}

		var teamEntries []meet.Entry
		for _, e := range finalists {
			if e.Athlete.Team == team {
				teamEntries = append(teamEntries, e)
			}
		}
		if len(teamEntries) == 0 {
			continue
		}

		ranked := rankBySeed(event, finalists)
		rankByName := make(map[string]int, len(ranked))
		for i, e := range ranked {
			rankByName[e.Athlete.Name] = i + 1
		}
		tiePts := tiePointsByName(event, ranked)

		var seedsHold float64
		details := make([]AthleteScenario, 0, len(teamEntries))
		for _, entry := range teamEntries {
			pts := tiePts[entry.Athlete.Name]
			projPlace, ok := rankByName[entry.Athlete.Name]
			if !ok {
				projPlace = scoringPlaces + 1
			}
			seedsHold += pts

			seedMark := entry.EffectiveSeed
			if seedMark == "" {
				seedMark = "N/A"
			}
			details = append(details, AthleteScenario{
				Athlete:        entry.Athlete.Name,
				SeedMark:       seedMark,
				ProjectedPlace: projPlace,
				SeedPts:        pts,
			})
		}

		best := 0.0
		n := len(teamEntries)
		if n > scoringPlaces {
			n = scoringPlaces
		}
		for p := 1; p <= n; p++ {
			best += pointsFor(p)
		}

		scenario.SeedsHold += seedsHold
		scenario.BestCase += best
		scenario.Breakdown = append(scenario.Breakdown, EventScenario{
			Event:        event.Name,
			Athletes:     details,
			SeedsHoldPts: seedsHold,
			BestCasePts:  best,
			WorstCasePts: 0,
		})
	}

	return scenario
}
