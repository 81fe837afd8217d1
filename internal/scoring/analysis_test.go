package scoring

import (
	"testing"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

func TestRun(t *testing.T) {
	state := meetFixture()
	result := Run(state, meet.Women, testSimulator(2000))

	if result.Gender != meet.Women {
		t.Errorf("gender = %q", result.Gender)
	}
	if len(result.TeamScores) != 4 {
		t.Fatalf("got %d team scores, want 4: %+v", len(result.TeamScores), result.TeamScores)
	}

	// Sorted by seed projection, best first.
	for i := 1; i < len(result.TeamScores); i++ {
		if result.TeamScores[i].SeedProjection > result.TeamScores[i-1].SeedProjection {
			t.Errorf("team scores not sorted by projection at %d", i)
		}
	}
	if result.TeamScores[0].Team != "Georgia" {
		t.Errorf("projected leader = %q", result.TeamScores[0].Team)
	}

	byTeam := map[string]*meet.TeamScore{}
	for _, ts := range result.TeamScores {
		byTeam[ts.Team] = ts
	}

	georgia := byTeam["Georgia"]
	if georgia.ActualPoints != 18 || georgia.SeedProjection != 34 || georgia.Ceiling != 36 {
		t.Errorf("Georgia = %+v", georgia)
	}
	// Win probability is a percentage with one decimal.
	if georgia.WinProbability != 100 {
		t.Errorf("Georgia win probability = %v, want 100", georgia.WinProbability)
	}

	// Texas has nothing left; its projection and ceiling collapse to actual.
	texas := byTeam["Texas"]
	if texas.SeedProjection != 15.5 || texas.Ceiling != 15.5 {
		t.Errorf("Texas = %+v", texas)
	}

	if len(result.Leverage) != 1 || result.Leverage[0].EventName != "Women 200m" {
		t.Errorf("leverage = %+v", result.Leverage)
	}
}

func TestRunFinishedMeet(t *testing.T) {
	// One completed final, nothing left to run: A 10, B 8, C and D tied for
	// third at 5.5, and the winner is certain.
	state := &meet.State{
		Events: []meet.Event{{
			Name: "Men 60m", Gender: meet.Men, Round: meet.RoundFinal,
			Status: meet.StatusFinal, Class: meet.ClassSprint,
			Entries: []meet.Entry{
				placed("A ONE", "Team A", 1),
				placed("B TWO", "Team B", 2),
				placed("C THREE", "Team C", 3),
				placed("D FOUR", "Team D", 3),
			},
		}},
	}
	result := Run(state, meet.Men, testSimulator(100))

	byTeam := map[string]*meet.TeamScore{}
	for _, ts := range result.TeamScores {
		byTeam[ts.Team] = ts
	}
	want := map[string]float64{"Team A": 10, "Team B": 8, "Team C": 5.5, "Team D": 5.5}
	for team, pts := range want {
		ts := byTeam[team]
		if ts == nil || ts.ActualPoints != pts {
			t.Errorf("%s = %+v, want %.1f points", team, ts, pts)
			continue
		}
		if ts.Ceiling != pts || ts.SeedProjection != pts {
			t.Errorf("%s ceiling/projection = %.1f/%.1f, want both %.1f",
				team, ts.Ceiling, ts.SeedProjection, pts)
		}
	}
	if byTeam["Team A"].WinProbability != 100 {
		t.Errorf("Team A win probability = %v, want 100", byTeam["Team A"].WinProbability)
	}
	for _, team := range []string{"Team B", "Team C", "Team D"} {
		if byTeam[team].WinProbability != 0 {
			t.Errorf("%s win probability = %v, want 0", team, byTeam[team].WinProbability)
		}
	}
}

func TestRunProjectsFromPrelimPool(t *testing.T) {
	// A final with no entries of its own draws its pool from the paired
	// prelim.
	state := &meet.State{
		Events: []meet.Event{
			{
				Name: "Men 60m Prelims", Gender: meet.Men, Round: meet.RoundPrelim,
				Status: meet.StatusFinal, Code: "022", RoundNum: 1, Class: meet.ClassSprint,
				Entries: []meet.Entry{
					entry("A ONE", "Team A", "6.55"),
					entry("B TWO", "Team B", "6.60"),
					entry("C THREE", "Team C", "6.70"),
				},
			},
			{
				Name: "Men 60m", Gender: meet.Men, Round: meet.RoundFinal,
				Status: meet.StatusScheduled, Code: "022", RoundNum: 2, Class: meet.ClassSprint,
			},
		},
		Pairings: map[string]meet.Pairing{"022": {Prelim: 0, Final: 1}},
	}
	result := Run(state, meet.Men, testSimulator(100))

	byTeam := map[string]*meet.TeamScore{}
	for _, ts := range result.TeamScores {
		byTeam[ts.Team] = ts
	}
	if ts := byTeam["Team A"]; ts == nil || ts.SeedProjection != 10 {
		t.Errorf("Team A = %+v, want projection 10 from the borrowed pool", ts)
	}
	if ts := byTeam["Team C"]; ts == nil || ts.SeedProjection != 6 {
		t.Errorf("Team C = %+v, want projection 6", ts)
	}
}

func TestRunDeterministicOutsideSimulation(t *testing.T) {
	state := meetFixture()
	first := Run(state, meet.Women, testSimulator(50))
	second := Run(state, meet.Women, testSimulator(50))

	if len(first.TeamScores) != len(second.TeamScores) {
		t.Fatalf("team score counts differ: %d vs %d", len(first.TeamScores), len(second.TeamScores))
	}
	for i := range first.TeamScores {
		a, b := first.TeamScores[i], second.TeamScores[i]
		if a.Team != b.Team || a.ActualPoints != b.ActualPoints ||
			a.SeedProjection != b.SeedProjection || a.Ceiling != b.Ceiling {
			t.Errorf("run %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRunEmptyState(t *testing.T) {
	state := &meet.State{}
	result := Run(state, meet.Men, testSimulator(10))

	if len(result.TeamScores) != 0 {
		t.Errorf("team scores = %+v", result.TeamScores)
	}
	if len(result.Leverage) != 0 {
		t.Errorf("leverage = %+v", result.Leverage)
	}
}
