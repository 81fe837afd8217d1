package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// DefaultCombinedEventCodes are the provider codes whose pages belong to
// combined events (Pentathlon, Heptathlon). Their _Scores.htm page carries
// the final standings; their sub-discipline pages are excluded entirely.
var DefaultCombinedEventCodes = []string{"017", "037"}

// Scraper walks a meet: index first, then each event's compiled page and,
// when the compiled page is still empty, the start list for seeds.
type Scraper struct {
	fetcher       *Fetcher
	allCapsTeams  []string
	combinedCodes map[string]bool
	log           *logrus.Entry
}

// Options tunes a Scraper. Zero values use package defaults.
type Options struct {
	Delay              time.Duration
	Timeout            time.Duration
	Retries            int
	AllCapsTeams       []string // overrides DefaultAllCapsTeams when non-nil
	CombinedEventCodes []string // overrides DefaultCombinedEventCodes when non-nil
}

// New creates a Scraper.
func New(opts Options, log *logrus.Entry) *Scraper {
	teams := opts.AllCapsTeams
	if teams == nil {
		teams = DefaultAllCapsTeams
	}
	codes := opts.CombinedEventCodes
	if codes == nil {
		codes = DefaultCombinedEventCodes
	}
	codeSet := make(map[string]bool, len(codes))
	for _, c := range codes {
		codeSet[c] = true
	}
	return &Scraper{
		fetcher:       NewFetcher(opts.Delay, opts.Timeout, opts.Retries, log),
		allCapsTeams:  teams,
		combinedCodes: codeSet,
		log:           log,
	}
}

// ScrapeMeet fetches and assembles the full meet snapshot. Individual event
// pages that cannot be fetched degrade to events with no entries; only an
// unreachable index page is fatal.
func (s *Scraper) ScrapeMeet(meetURL string) (*meet.State, error) {
	meetURL = strings.TrimRight(meetURL, "/")
	s.log.WithField("meet_url", meetURL).Info("scraping meet")

	indexDoc, err := s.fetcher.Get(meetURL + "/index.htm")
	if err != nil {
		return nil, fmt.Errorf("fetching meet index: %w", err)
	}
	rawEvents, meetName := parseIndex(indexDoc)

	state := &meet.State{
		ScrapeID:  uuid.NewString(),
		MeetURL:   meetURL,
		MeetName:  meetName,
		ScrapedAt: time.Now().UTC(),
		Pairings:  make(map[string]meet.Pairing),
	}

	combinedSeen := make(map[string]bool)

	for _, raw := range rawEvents {
		code, roundNum, scores := parseHref(raw.CompiledHref)
		compiledURL := meetURL + "/" + raw.CompiledHref

		if s.combinedCodes[code] {
			if scores && !combinedSeen[code] {
				combinedSeen[code] = true
				state.Combined = append(state.Combined, s.scrapeCombined(raw, compiledURL))
			}
			// Sub-discipline pages of a combined event never enter the
			// event list.
			continue
		}
		if scores {
			continue
		}

		event := meet.Event{
			Name:        raw.Name,
			Gender:      meet.InferGender(raw.Name),
			Round:       inferRound(raw.RoundLabel),
			Status:      meet.StatusScheduled,
			Code:        code,
			RoundNum:    roundNum,
			Class:       meet.Classify(raw.Name),
			CompiledURL: compiledURL,
			Day:         raw.Day,
			StartTime:   raw.StartTime,
		}
		if raw.StartHref != "" {
			event.StartURL = meetURL + "/" + raw.StartHref
		}

		doc, err := s.fetcher.Get(compiledURL)
		if err != nil {
			s.log.WithError(err).WithField("url", compiledURL).Warn("event page unreachable, keeping empty event")
		}

		// Some index years omit the event name; the compiled page title
		// ("Women 60 M - ...") is authoritative then.
		if event.Name == "" && doc != nil {
			if title := pageTitle(doc); title != "" {
				event.Name = title
				event.Gender = meet.InferGender(title)
				event.Class = meet.Classify(title)
			}
		}

		athletes, status := parseResultPage(doc, false, s.allCapsTeams)

		if status == meet.StatusScheduled && event.StartURL != "" {
			startDoc, err := s.fetcher.Get(event.StartURL)
			if err != nil {
				s.log.WithError(err).WithField("url", event.StartURL).Warn("start list unreachable")
			}
			athletes, _ = parseResultPage(startDoc, true, s.allCapsTeams)
		}

		event.Status = status
		event.Entries = make([]meet.Entry, 0, len(athletes))
		for _, a := range athletes {
			event.Entries = append(event.Entries, meet.Entry{Athlete: a, EffectiveSeed: a.SeedMark})
		}

		state.Events = append(state.Events, event)
	}

	pairPrelimFinal(state)
	assignEffectiveSeeds(state)

	s.log.WithFields(logrus.Fields{
		"scrape_id": state.ScrapeID,
		"events":    len(state.Events),
		"combined":  len(state.Combined),
	}).Info("scrape complete")
	return state, nil
}

func (s *Scraper) scrapeCombined(raw rawEvent, scoresURL string) meet.CombinedResult {
	doc, err := s.fetcher.Get(scoresURL)
	if err != nil {
		s.log.WithError(err).WithField("url", scoresURL).Warn("scores page unreachable")
	}
	combined := parseScoresPage(doc, raw.Name, meet.InferGender(raw.Name), s.allCapsTeams)
	combined.ScoresURL = scoresURL
	return combined
}

func inferRound(label string) meet.RoundType {
	if strings.Contains(strings.ToLower(label), "prelim") {
		return meet.RoundPrelim
	}
	return meet.RoundFinal
}

// pageTitle returns the compiled page title with any " - <meet name>" suffix
// dropped.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if i := strings.Index(title, " - "); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// pairPrelimFinal links each event code's first-round prelim with its final
// through the pairing index, then copies completed-prelim marks onto the
// matching final entries by athlete name.
func pairPrelimFinal(state *meet.State) {
	byCode := make(map[string][]int)
	for i := range state.Events {
		byCode[state.Events[i].Code] = append(byCode[state.Events[i].Code], i)
	}

	for code, idxs := range byCode {
		prelim, final := -1, -1
		for _, i := range idxs {
			e := &state.Events[i]
			if prelim < 0 && e.RoundNum == 1 && e.Round == meet.RoundPrelim {
				prelim = i
			}
			if final < 0 && (e.RoundNum == 2 || e.Round == meet.RoundFinal) {
				final = i
			}
		}
		if prelim < 0 || final < 0 {
			continue
		}
		state.Pairings[code] = meet.Pairing{Prelim: prelim, Final: final}

		prelimEvent := &state.Events[prelim]
		if prelimEvent.Status != meet.StatusFinal {
			continue
		}
		finalEvent := state.FinalOf(prelimEvent)
		if finalEvent == nil {
			continue
		}
		prelimMarks := make(map[string]string, len(prelimEvent.Entries))
		for _, entry := range prelimEvent.Entries {
			prelimMarks[entry.Athlete.Name] = entry.Athlete.FinalMark
		}
		for j := range finalEvent.Entries {
			if m, ok := prelimMarks[finalEvent.Entries[j].Athlete.Name]; ok {
				finalEvent.Entries[j].Athlete.PrelimMark = m
			}
		}
	}
}

// assignEffectiveSeeds applies the seeding policy to every final-round
// entry: short sprints and the 60m hurdles run off their prelim time when
// one exists, everything else ranks on the season best.
func assignEffectiveSeeds(state *meet.State) {
	for i := range state.Events {
		event := &state.Events[i]
		if event.Round != meet.RoundFinal {
			continue
		}
		for j := range event.Entries {
			entry := &event.Entries[j]
			if event.Class.UsesPrelimSeed() && entry.Athlete.PrelimMark != "" {
				entry.EffectiveSeed = entry.Athlete.PrelimMark
			} else {
				entry.EffectiveSeed = entry.Athlete.SeedMark
			}
		}
	}
}
