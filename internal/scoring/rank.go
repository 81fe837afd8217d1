package scoring

import (
	"math"
	"sort"

	"github.com/pfrederiksen/meet-tracker/internal/mark"
	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// unseededKey pushes entries without a usable seed mark behind every real
// one.
const unseededKey = 1e9

// tieEpsilon treats seed keys this close as the same mark.
const tieEpsilon = 0.001

// seedKey returns the sort key for an entry: ascending order ranks best
// first. Timed events use seconds directly; field events flip the magnitude
// so the longest or highest mark sorts first.
func seedKey(entry meet.Entry, event *meet.Event) float64 {
	v, ok := mark.Magnitude(entry.EffectiveSeed)
	if !ok {
		return unseededKey
	}
	if event.Class.FieldMeasured() {
		return -v
	}
	return v
}

// rankBySeed returns the named entries sorted best-to-worst by effective
// seed.
func rankBySeed(event *meet.Event, entries []meet.Entry) []meet.Entry {
	ranked := make([]meet.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Athlete.Name != "" {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return seedKey(ranked[i], event) < seedKey(ranked[j], event)
	})
	return ranked
}

// finalistEntries builds the finalist pool for an upcoming final: the
// final's own entries when it has them, otherwise the paired prelim's, and
// in either case trimmed to the top n by seed rank when the pool is larger.
// Field events have no prelims, so their whole entry list is the pool.
func finalistEntries(state *meet.State, event *meet.Event, n int) []meet.Entry {
	entries := event.Entries

	if len(entries) == 0 {
		if prelim := state.PrelimOf(event); prelim != nil {
			entries = prelim.Entries
		}
	}
	if len(entries) == 0 {
		return nil
	}

	if len(entries) > n {
		entries = rankBySeed(event, entries)[:n]
	}
	return entries
}

// eachTieGroup walks ranked entries in tie groups (equal seed keys within
// tieEpsilon) through the scoring places, calling fn with each group and the
// tie-split points per entry: the mean of the points for the contiguous
// place block the group occupies, clipped at the last scoring place.
func eachTieGroup(event *meet.Event, ranked []meet.Entry, fn func(group []meet.Entry, avgPts float64)) {
	place := 1
	i := 0
	for i < len(ranked) && place <= scoringPlaces {
		j := i + 1
		key := seedKey(ranked[i], event)
		for j < len(ranked) && math.Abs(seedKey(ranked[j], event)-key) < tieEpsilon {
			j++
		}
		tied := j - i

		end := place + tied
		if end > scoringPlaces+1 {
			end = scoringPlaces + 1
		}
		var sum float64
		for p := place; p < end; p++ {
			sum += pointsFor(p)
		}
		avg := 0.0
		if end > place {
			avg = sum / float64(end-place)
		}

		fn(ranked[i:j], avg)

		place += tied
		i = j
	}
}

// tiePointsByName maps athlete name to tie-split projected points. Rank maps
// key on the athlete name; entry identity would be fragile across the
// borrowed-prelim pool.
func tiePointsByName(event *meet.Event, ranked []meet.Entry) map[string]float64 {
	pts := make(map[string]float64, len(ranked))
	eachTieGroup(event, ranked, func(group []meet.Entry, avg float64) {
		for _, e := range group {
			pts[e.Athlete.Name] = avg
		}
	})
	return pts
}
