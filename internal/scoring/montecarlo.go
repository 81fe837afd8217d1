package scoring

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

const (
	// DefaultTrials is the Monte-Carlo trial count.
	DefaultTrials = 10000

	// simulationPoolSize widens the finalist pool for simulation; a deeper
	// field captures upset probability that a strict top-8 cut would hide.
	simulationPoolSize = 15

	// strengthDecay is the Plackett-Luce strength ratio between adjacent
	// seed ranks.
	strengthDecay = 0.65
)

// Simulator runs Monte-Carlo win-probability simulations. The random source
// is injected so runs are reproducible under a fixed seed.
type Simulator struct {
	trials int
	rng    *rand.Rand
	log    *logrus.Entry
}

// NewSimulator creates a Simulator. A non-positive trial count falls back to
// DefaultTrials.
func NewSimulator(trials int, rng *rand.Rand, log *logrus.Entry) *Simulator {
	if trials <= 0 {
		trials = DefaultTrials
	}
	return &Simulator{trials: trials, rng: rng, log: log}
}

// simEvent is one upcoming final prepared for simulation: its finalists in
// seed order with normalized Plackett-Luce strengths.
type simEvent struct {
	ranked []meet.Entry
	probs  []float64
}

// WinProbability estimates each team's chance of winning the meet. Every
// trial samples a full finishing order for each upcoming final by repeatedly
// drawing from the remaining pool weighted by renormalized strength, awards
// place points on top of actual scores, and credits the trial's leaders with
// an equal share of one win. With no upcoming finals the probability
// collapses to a tie split among the current leaders.
func (s *Simulator) WinProbability(actual map[string]*meet.TeamScore, state *meet.State, gender meet.Gender) map[string]float64 {
	upcoming := state.UpcomingFinals(gender)

	if len(upcoming) == 0 {
		return leaderSplit(actual)
	}

	var events []simEvent
	for _, event := range upcoming {
		entries := finalistEntries(state, event, simulationPoolSize)
		if len(entries) == 0 {
			continue
		}
		ranked := rankBySeed(event, entries)

		strengths := make([]float64, len(ranked))
		total := 0.0
		str := 1.0
		for i := range ranked {
			strengths[i] = str
			total += str
			str *= strengthDecay
		}
		probs := make([]float64, len(ranked))
		for i, st := range strengths {
			probs[i] = st / total
		}
		events = append(events, simEvent{ranked: ranked, probs: probs})
	}

	allTeams := make(map[string]bool, len(actual))
	for t := range actual {
		allTeams[t] = true
	}
	for _, ev := range events {
		for _, entry := range ev.ranked {
			allTeams[entry.Athlete.Team] = true
		}
	}

	winCredits := make(map[string]float64)
	base := make(map[string]float64, len(allTeams))
	for t := range allTeams {
		if ts, ok := actual[t]; ok {
			base[t] = ts.ActualPoints
		}
	}

	simScores := make(map[string]float64, len(allTeams))
	for trial := 0; trial < s.trials; trial++ {
		for t := range allTeams {
			simScores[t] = base[t]
		}

		for _, ev := range events {
			s.simulateEvent(ev, simScores)
		}

		maxScore := 0.0
		first := true
		for _, sc := range simScores {
			if first || sc > maxScore {
				maxScore = sc
				first = false
			}
		}
		var leaders []string
		for t, sc := range simScores {
			if sc == maxScore {
				leaders = append(leaders, t)
			}
		}
		for _, t := range leaders {
			winCredits[t] += 1.0 / float64(len(leaders))
		}
	}

	total := 0.0
	for _, c := range winCredits {
		total += c
	}
	probs := make(map[string]float64)
	if total <= 0 {
		return probs
	}
	for t, c := range winCredits {
		if c > 0 {
			probs[t] = c / total
		}
	}
	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"gender": gender,
			"trials": s.trials,
			"events": len(events),
			"teams":  len(probs),
		}).Debug("win probability simulation complete")
	}
	return probs
}

// simulateEvent draws one finishing order and adds place points to the
// simulated scores.
func (s *Simulator) simulateEvent(ev simEvent, simScores map[string]float64) {
	type weighted struct {
		entry meet.Entry
		prob  float64
	}
	remaining := make([]weighted, len(ev.ranked))
	for i := range ev.ranked {
		remaining[i] = weighted{entry: ev.ranked[i], prob: ev.probs[i]}
	}

	for place := 1; place <= scoringPlaces && len(remaining) > 0; place++ {
		total := 0.0
		for _, w := range remaining {
			total += w.prob
		}
		if total <= 0 {
			break
		}

		r := s.rng.Float64() * total
		cumulative := 0.0
		chosen := 0
		for i, w := range remaining {
			cumulative += w.prob
			if r <= cumulative {
				chosen = i
				break
			}
		}

		winner := remaining[chosen]
		remaining = append(remaining[:chosen], remaining[chosen+1:]...)

		if pts := pointsFor(place); pts > 0 {
			simScores[winner.entry.Athlete.Team] += pts
		}
	}
}

// leaderSplit returns 1/(number of leaders) for each current leader and zero
// for everyone else.
func leaderSplit(actual map[string]*meet.TeamScore) map[string]float64 {
	if len(actual) == 0 {
		return map[string]float64{}
	}

	teams := make([]string, 0, len(actual))
	for t := range actual {
		teams = append(teams, t)
	}
	sort.Strings(teams)

	maxPts := actual[teams[0]].ActualPoints
	for _, t := range teams {
		if actual[t].ActualPoints > maxPts {
			maxPts = actual[t].ActualPoints
		}
	}
	var leaders []string
	for _, t := range teams {
		if actual[t].ActualPoints == maxPts {
			leaders = append(leaders, t)
		}
	}

	probs := make(map[string]float64, len(teams))
	for _, t := range teams {
		probs[t] = 0
	}
	for _, t := range leaders {
		probs[t] = 1.0 / float64(len(leaders))
	}
	return probs
}
