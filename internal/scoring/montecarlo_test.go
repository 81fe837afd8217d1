package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

func testSimulator(trials int) *Simulator {
	return NewSimulator(trials, rand.New(rand.NewSource(1)), testLog())
}

func TestWinProbabilitySumsToOne(t *testing.T) {
	state := meetFixture()
	actual := ComputeActualScores(state, meet.Women)
	probs := testSimulator(2000).WinProbability(actual, state, meet.Women)

	if len(probs) == 0 {
		t.Fatal("no probabilities returned")
	}
	total := 0.0
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Errorf("probability out of range: %v", p)
		}
		total += p
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", total)
	}
}

func TestWinProbabilityFavorsTheLeader(t *testing.T) {
	state := meetFixture()
	actual := ComputeActualScores(state, meet.Women)
	probs := testSimulator(5000).WinProbability(actual, state, meet.Women)

	// Georgia leads on actual points and has the two best 200m seeds; it
	// must be the clear favorite.
	for team, p := range probs {
		if team != "Georgia" && p >= probs["Georgia"] {
			t.Errorf("%s at %.3f not below Georgia at %.3f", team, p, probs["Georgia"])
		}
	}
	if probs["Georgia"] < 0.5 {
		t.Errorf("Georgia probability = %.3f, expected a heavy favorite", probs["Georgia"])
	}
}

func TestWinProbabilityNoUpcomingFinals(t *testing.T) {
	state := meetFixture()
	// Close out the 200m so nothing remains.
	state.Events[1].Status = meet.StatusFinal
	actual := ComputeActualScores(state, meet.Women)
	probs := testSimulator(100).WinProbability(actual, state, meet.Women)

	var leader string
	best := -1.0
	for t, ts := range actual {
		if ts.ActualPoints > best {
			best = ts.ActualPoints
			leader = t
		}
	}
	if probs[leader] != 1 {
		t.Errorf("sole leader %q probability = %v, want 1", leader, probs[leader])
	}
	for team, p := range probs {
		if team != leader && p != 0 {
			t.Errorf("%s probability = %v, want 0", team, p)
		}
	}
}

func TestLeaderSplit(t *testing.T) {
	actual := map[string]*meet.TeamScore{
		"A": {Team: "A", ActualPoints: 30},
		"B": {Team: "B", ActualPoints: 30},
		"C": {Team: "C", ActualPoints: 10},
	}
	probs := leaderSplit(actual)
	if probs["A"] != 0.5 || probs["B"] != 0.5 {
		t.Errorf("co-leaders = %v / %v, want 0.5 each", probs["A"], probs["B"])
	}
	if probs["C"] != 0 {
		t.Errorf("trailing team = %v, want 0", probs["C"])
	}

	if got := leaderSplit(map[string]*meet.TeamScore{}); len(got) != 0 {
		t.Errorf("empty input = %v", got)
	}
}

func TestSimulateEventAwardsAllPlaces(t *testing.T) {
	sim := testSimulator(1)
	ranked := []meet.Entry{
		entry("A ONE", "Georgia", "6.50"),
		entry("B TWO", "LSU", "6.60"),
		entry("C THREE", "Oregon", "6.70"),
	}
	ev := simEvent{ranked: ranked, probs: []float64{0.6, 0.3, 0.1}}

	scores := map[string]float64{"Georgia": 0, "LSU": 0, "Oregon": 0}
	sim.simulateEvent(ev, scores)

	// Three athletes, three scoring places: 10+8+6 always handed out.
	total := scores["Georgia"] + scores["LSU"] + scores["Oregon"]
	if total != 24 {
		t.Errorf("points awarded = %.2f, want 24: %v", total, scores)
	}
}
