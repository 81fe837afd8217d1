package scoring

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func entry(name, team, seed string) meet.Entry {
	return meet.Entry{
		Athlete:       meet.Athlete{Name: name, Team: team, SeedMark: seed},
		EffectiveSeed: seed,
	}
}

func placed(name, team string, place int) meet.Entry {
	return meet.Entry{Athlete: meet.Athlete{Name: name, Team: team, FinalPlace: place}}
}

// meetFixture is a snapshot mid-meet: one completed final with a tie for
// third, one upcoming sprint final seeded from marks, and one complete
// combined event.
func meetFixture() *meet.State {
	return &meet.State{
		MeetName: "Conference Indoor Championships",
		Events: []meet.Event{
			{
				Name:   "Women 60m",
				Gender: meet.Women,
				Round:  meet.RoundFinal,
				Status: meet.StatusFinal,
				Code:   "002",
				Class:  meet.ClassSprint,
				Entries: []meet.Entry{
					placed("Ava ONE", "Georgia", 1),
					placed("Bea TWO", "LSU", 2),
					placed("Cat THREE", "Oregon", 3),
					placed("Dee FOUR", "Texas", 3),
				},
			},
			{
				Name:   "Women 200m",
				Gender: meet.Women,
				Round:  meet.RoundFinal,
				Status: meet.StatusScheduled,
				Code:   "004",
				Class:  meet.ClassSprint,
				Entries: []meet.Entry{
					entry("Ava ONE", "Georgia", "22.50"),
					entry("Eve FIVE", "Georgia", "22.80"),
					entry("Bea TWO", "LSU", "22.65"),
					entry("Fay SIX", "Oregon", "23.10"),
				},
			},
		},
		Combined: []meet.CombinedResult{
			{
				EventName: "Women Pentathlon",
				Gender:    meet.Women,
				Status:    meet.StatusFinal,
				Athletes: []meet.Athlete{
					{Name: "Gia SEVEN", Team: "Texas", FinalPlace: 1},
					{Name: "Hana EIGHT", Team: "Georgia", FinalPlace: 2},
				},
			},
		},
		Pairings: map[string]meet.Pairing{},
	}
}
