package scoring

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// Leverage describes how much one remaining event can move the standings
// among the currently leading teams.
type Leverage struct {
	EventName       string   `json:"event_name"`
	Score           float64  `json:"leverage_score"`
	MaxSwing        float64  `json:"max_swing"`
	TotalPtsAvail   float64  `json:"total_pts_available"`
	NumTeams        int      `json:"n_teams"`
	TopTeamsEntered []string `json:"top_teams_in_event"`
	Headline        string   `json:"headline"`
}

// ComputeLeverageIndex scores every upcoming final with entries by how many
// of the current top-5 teams are entered times the points spread between
// first and the last scoring place. Sorted highest leverage first.
func ComputeLeverageIndex(state *meet.State, gender meet.Gender, actual map[string]*meet.TeamScore) []Leverage {
	topTeams := topTeamsByActual(actual, 5)

	var results []Leverage
	for _, event := range state.UpcomingFinals(gender) {
		if len(event.Entries) == 0 {
			continue
		}

		teamsInEvent := make(map[string]bool)
		for _, entry := range event.Entries {
			teamsInEvent[entry.Athlete.Team] = true
		}

		lastScoring := len(event.Entries)
		if lastScoring > scoringPlaces {
			lastScoring = scoringPlaces
		}
		maxSwing := pointsFor(1) - pointsFor(lastScoring)

		var entered []string
		for _, t := range topTeams {
			if teamsInEvent[t] {
				entered = append(entered, t)
			}
		}

		var totalPts float64
		for p := 1; p <= lastScoring; p++ {
			totalPts += pointsFor(p)
		}

		results = append(results, Leverage{
			EventName:       event.Name,
			Score:           float64(len(entered)) * maxSwing,
			MaxSwing:        maxSwing,
			TotalPtsAvail:   totalPts,
			NumTeams:        len(teamsInEvent),
			TopTeamsEntered: entered,
			Headline:        leverageHeadline(event.Name, entered, totalPts, maxSwing),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func topTeamsByActual(actual map[string]*meet.TeamScore, n int) []string {
	teams := make([]string, 0, len(actual))
	for t := range actual {
		teams = append(teams, t)
	}
	sort.SliceStable(teams, func(i, j int) bool {
		if actual[teams[i]].ActualPoints != actual[teams[j]].ActualPoints {
			return actual[teams[i]].ActualPoints > actual[teams[j]].ActualPoints
		}
		return teams[i] < teams[j]
	})
	if len(teams) > n {
		teams = teams[:n]
	}
	return teams
}

func leverageHeadline(eventName string, topTeams []string, totalPts, maxSwing float64) string {
	teamsStr := "multiple teams"
	if len(topTeams) > 0 {
		show := topTeams
		if len(show) > 2 {
			show = show[:2]
		}
		teamsStr = show[0]
		if len(show) == 2 {
			teamsStr = show[0] + " & " + show[1]
		}
	}
	return fmt.Sprintf("%s: %.0f pts available — %s both have athletes entered. Max swing: %.0f pts between contenders.",
		eventName, totalPts, teamsStr, maxSwing)
}
