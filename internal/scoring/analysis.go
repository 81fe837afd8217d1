package scoring

import (
	"math"
	"sort"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// leverageTopN bounds the leverage list carried in an analysis result.
const leverageTopN = 8

// Result bundles every analysis layer for one gender against one snapshot.
type Result struct {
	Gender     meet.Gender                `json:"gender"`
	TeamScores []*meet.TeamScore          `json:"team_scores"`
	Leverage   []Leverage                 `json:"leverage_index"`
	Actual     map[string]*meet.TeamScore `json:"-"`
	State      *meet.State                `json:"-"`
}

// Run executes every scoring layer and assembles the team table sorted by
// seed projection, best first.
func Run(state *meet.State, gender meet.Gender, sim *Simulator) *Result {
	actual := ComputeActualScores(state, gender)
	ceilings := ComputeOptimisticCeiling(actual, state, gender)
	projections := ComputeSeedProjection(actual, state, gender)
	leverage := ComputeLeverageIndex(state, gender, actual)
	winProbs := sim.WinProbability(actual, state, gender)

	teams := make(map[string]bool)
	for t := range actual {
		teams[t] = true
	}
	for t := range ceilings {
		teams[t] = true
	}
	for t := range projections {
		teams[t] = true
	}

	names := make([]string, 0, len(teams))
	for t := range teams {
		names = append(names, t)
	}
	sort.Strings(names)

	teamScores := make([]*meet.TeamScore, 0, len(names))
	for _, team := range names {
		ts, ok := actual[team]
		if !ok {
			ts = &meet.TeamScore{Team: team, Gender: gender}
		}
		if c, ok := ceilings[team]; ok {
			ts.Ceiling = c
		} else {
			ts.Ceiling = ts.ActualPoints
		}
		if p, ok := projections[team]; ok {
			ts.SeedProjection = p
		} else {
			ts.SeedProjection = ts.ActualPoints
		}
		ts.WinProbability = math.Round(winProbs[team]*1000) / 10
		teamScores = append(teamScores, ts)
	}

	sort.SliceStable(teamScores, func(i, j int) bool {
		return teamScores[i].SeedProjection > teamScores[j].SeedProjection
	})

	if len(leverage) > leverageTopN {
		leverage = leverage[:leverageTopN]
	}

	return &Result{
		Gender:     gender,
		TeamScores: teamScores,
		Leverage:   leverage,
		Actual:     actual,
		State:      state,
	}
}
