package meet

import (
	"strings"
	"time"
)

// Gender identifies the division an event belongs to.
type Gender string

const (
	Women Gender = "Women"
	Men   Gender = "Men"
)

// RoundType distinguishes preliminary rounds from finals.
type RoundType string

const (
	RoundPrelim RoundType = "Prelims"
	RoundFinal  RoundType = "Final"
)

// Status tracks how far along an event is.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusFinal      Status = "Final"
)

// Athlete is one competitor's record within an event. Marks are kept as the
// raw strings the results provider publishes; ordering is derived on demand.
type Athlete struct {
	Name       string `json:"name"`
	Team       string `json:"team"`
	SeedMark   string `json:"seed_mark,omitempty"`   // season best from the start list
	PrelimMark string `json:"prelim_mark,omitempty"` // actual prelim result
	FinalMark  string `json:"final_mark,omitempty"`  // actual final result
	FinalPlace int    `json:"final_place,omitempty"` // 0 when unplaced
}

// Entry binds one athlete to one event occurrence. EffectiveSeed is the mark
// all projection logic ranks on; it is assigned after pairing, not at parse
// time.
type Entry struct {
	Athlete        Athlete `json:"athlete"`
	EffectiveSeed  string  `json:"effective_seed,omitempty"`
	ProjectedPlace int     `json:"projected_place,omitempty"`
}

// Event is one round of one event on the meet schedule.
type Event struct {
	Name        string    `json:"name"` // e.g. "Women 200m"
	Gender      Gender    `json:"gender"`
	Round       RoundType `json:"round"`
	Status      Status    `json:"status"`
	Code        string    `json:"code"`      // provider event code, e.g. "002"
	RoundNum    int       `json:"round_num"` // 1 = first round, 2 = final round
	Class       Class     `json:"class"`
	CompiledURL string    `json:"compiled_url"`
	StartURL    string    `json:"start_url,omitempty"`
	Day         string    `json:"day,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	Entries     []Entry   `json:"entries,omitempty"`
}

// BaseName strips the gender prefix: "Women 200m" -> "200m".
func (e *Event) BaseName() string {
	name := strings.Replace(e.Name, "Women ", "", 1)
	name = strings.Replace(name, "Men ", "", 1)
	return strings.TrimSpace(name)
}

// Scoreable reports whether the event contributes to actual team points.
// Only confirmed-complete finals count.
func (e *Event) Scoreable() bool {
	return e.Round == RoundFinal && e.Status == StatusFinal
}

// CombinedResult holds the final standings of a Pentathlon or Heptathlon.
// Sub-disciplines are not modeled; only the combined placing matters.
type CombinedResult struct {
	EventName string    `json:"event_name"`
	Gender    Gender    `json:"gender"`
	Status    Status    `json:"status"`
	ScoresURL string    `json:"scores_url"`
	Athletes  []Athlete `json:"athletes,omitempty"`
}

// Complete reports whether the combined event can be scored.
func (c *CombinedResult) Complete() bool {
	return c.Status == StatusFinal && len(c.Athletes) > 0
}

// TeamScore aggregates one team's points within a gender, plus the derived
// analysis numbers filled in per run.
type TeamScore struct {
	Team         string   `json:"team"`
	Gender       Gender   `json:"gender"`
	ActualPoints float64  `json:"actual_points"`
	EventsScored []string `json:"events_scored,omitempty"`

	Ceiling        float64 `json:"ceiling"`
	SeedProjection float64 `json:"seed_projection"`
	WinProbability float64 `json:"win_probability"` // percentage, one decimal
}

// Pairing links a prelim round to its final by index into State.Events.
// A value of -1 means that side is absent.
type Pairing struct {
	Prelim int `json:"prelim"`
	Final  int `json:"final"`
}

// State is the full snapshot of a meet at one scrape. A new scrape produces
// a new State wholesale; analysis never mutates one.
type State struct {
	ScrapeID  string             `json:"scrape_id"`
	MeetURL   string             `json:"meet_url"`
	MeetName  string             `json:"meet_name"`
	ScrapedAt time.Time          `json:"scraped_at"`
	Events    []Event            `json:"events"`
	Combined  []CombinedResult   `json:"combined,omitempty"`
	Pairings  map[string]Pairing `json:"pairings,omitempty"` // event code -> round pair
}

// EventsByGender returns the events in schedule order for one gender.
func (s *State) EventsByGender(g Gender) []*Event {
	var out []*Event
	for i := range s.Events {
		if s.Events[i].Gender == g {
			out = append(out, &s.Events[i])
		}
	}
	return out
}

// CompletedFinals returns the scoreable finals for one gender.
func (s *State) CompletedFinals(g Gender) []*Event {
	var out []*Event
	for i := range s.Events {
		e := &s.Events[i]
		if e.Gender == g && e.Scoreable() {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingFinals returns finals not yet complete, including ones that only
// have a start list posted.
func (s *State) UpcomingFinals(g Gender) []*Event {
	var out []*Event
	for i := range s.Events {
		e := &s.Events[i]
		if e.Gender == g && e.Round == RoundFinal && e.Status != StatusFinal {
			out = append(out, e)
		}
	}
	return out
}

// PrelimOf returns the prelim paired with the given final, or nil.
func (s *State) PrelimOf(e *Event) *Event {
	p, ok := s.Pairings[e.Code]
	if !ok || p.Prelim < 0 || p.Prelim >= len(s.Events) {
		return nil
	}
	prelim := &s.Events[p.Prelim]
	if prelim.Gender != e.Gender || prelim == e {
		return nil
	}
	return prelim
}

// FinalOf returns the final paired with the given prelim, or nil.
func (s *State) FinalOf(e *Event) *Event {
	p, ok := s.Pairings[e.Code]
	if !ok || p.Final < 0 || p.Final >= len(s.Events) {
		return nil
	}
	final := &s.Events[p.Final]
	if final.Gender != e.Gender || final == e {
		return nil
	}
	return final
}
