package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rawEvent is one event descriptor lifted from the meet index page, before
// any per-event page has been fetched.
type rawEvent struct {
	Name         string
	RoundLabel   string
	CompiledHref string
	StartHref    string
	Day          string
	StartTime    string
}

var (
	startTimeRe = regexp.MustCompile(`^\d+:\d+ [AP]M`)
	compiledRe  = regexp.MustCompile(`^(\d+)-(\d+)_`)
	scoresRe    = regexp.MustCompile(`^(\d+)_Scores\.htm`)
)

// Cells whose text is one of these are column labels or link noise, never an
// event name.
var nonEventTexts = map[string]bool{
	"result": true, "results": true, "scores": true, "start list": true,
	"status": true, "day": true, "start": true, "rnd": true, "round": true,
	"": true, "-": true,
}

// A cell only counts as an event name if it mentions one of these.
var eventKeywords = []string{
	"women", "men", "mile", "hurdle", "relay", "jump",
	"vault", "shot", "weight", "throw", "dmr", "pentathlon",
	"heptathlon", "3000", "5000", "800m", "400m", "200m",
	"60m", "1500", "1000",
}

// parseIndex walks the meet index page and returns the raw event list plus
// the meet's display name from the page title.
//
// Index rows interleave day markers with event rows of the shape
// Day | Time | Event Name | Round | Start List | Results | Status, but the
// event name may be plain text or a link depending on the meet year, and the
// Result/Start List link labels must never be mistaken for the name. Events
// whose name cell is missing entirely are resolved later from the compiled
// page title.
func parseIndex(doc *goquery.Document) ([]rawEvent, string) {
	meetName := "Track Meet"
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		meetName = t
	}

	var events []rawEvent
	currentDay := "Unknown"

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, c *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(c.Text()))
		})

		switch texts[0] {
		case "Thursday", "Friday", "Saturday":
			currentDay = texts[0]
		}

		var evt rawEvent
		evt.Day = currentDay

		cells.Each(func(i int, cell *goquery.Selection) {
			cellText := texts[i]

			// First match wins: the round column precedes the status column,
			// which also reads "Final" once a round completes.
			if clean := strings.TrimRight(strings.TrimSpace(cellText), "s"); evt.RoundLabel == "" && (clean == "Prelim" || clean == "Final") {
				evt.RoundLabel = clean
			}
			if startTimeRe.MatchString(cellText) {
				evt.StartTime = cellText
			}
			if evt.Name == "" && looksLikeEventName(cellText) {
				evt.Name = cellText
			}

			cell.Find("a").Each(func(_ int, link *goquery.Selection) {
				href, _ := link.Attr("href")
				linkText := strings.TrimSpace(link.Text())

				if evt.Name == "" && looksLikeEventName(linkText) {
					evt.Name = linkText
				}

				switch {
				case strings.Contains(href, "_compiled.htm"):
					evt.CompiledHref = href
				case strings.Contains(href, "_start.htm"):
					evt.StartHref = href
				case strings.Contains(href, "_Scores.htm"):
					evt.CompiledHref = href
					evt.StartHref = href
				}
			})
		})

		if evt.CompiledHref == "" {
			return
		}
		if evt.RoundLabel == "" {
			evt.RoundLabel = "Final"
		}
		events = append(events, evt)
	})

	return events, meetName
}

func looksLikeEventName(text string) bool {
	lower := strings.ToLower(text)
	if nonEventTexts[lower] {
		return false
	}
	for _, kw := range eventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseHref derives (event code, round number, scores flag) from a page
// href:
//
//	"002-1_compiled.htm" -> ("002", 1, false)
//	"017_Scores.htm"     -> ("017", 0, true)
func parseHref(href string) (code string, round int, scores bool) {
	parts := strings.Split(href, "/")
	basename := parts[len(parts)-1]

	if sub := scoresRe.FindStringSubmatch(basename); sub != nil {
		return sub[1], 0, true
	}
	if sub := compiledRe.FindStringSubmatch(basename); sub != nil {
		n, _ := strconv.Atoi(sub[2])
		return sub[1], n, false
	}
	return "000", 1, false
}
