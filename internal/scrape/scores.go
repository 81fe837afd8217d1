package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

// parseScoresPage reads a combined-event standings page (Pentathlon or
// Heptathlon). Only the final combined placing is modeled; the individual
// disciplines are not. The first table with athlete standings wins.
func parseScoresPage(doc *goquery.Document, eventName string, gender meet.Gender, allCapsTeams []string) meet.CombinedResult {
	result := meet.CombinedResult{
		EventName: eventName,
		Gender:    gender,
		Status:    meet.StatusScheduled,
	}
	if doc == nil {
		return result
	}

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		var header []string
		rows.First().Find("th, td").Each(func(_ int, c *goquery.Selection) {
			header = append(header, strings.ToLower(strings.TrimSpace(c.Text())))
		})
		if !contains(header, "name") && !contains(header, "athlete") {
			return true
		}

		nameIdx, teamIdx, placeIdx := -1, -1, -1
		for i, h := range header {
			switch h {
			case "name", "athlete":
				nameIdx = i
			case "team", "school":
				teamIdx = i
			case "pl", "place", "#":
				placeIdx = i
			}
		}
		if nameIdx < 0 {
			return true
		}

		var athletes []meet.Athlete
		hasFinal := false

		rows.Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}
			cells := rowCells(row)
			if len(cells) == 0 || nameIdx >= len(cells) {
				return
			}

			rawName := cellText(cells, nameIdx)
			if rawName == "" {
				return
			}

			var name, team string
			if teamIdx >= 0 {
				name = rawName
				team = cellText(cells, teamIdx)
			} else {
				name, team = SplitAthleteTeam(rawName, allCapsTeams)
			}
			if name == "" || team == "" {
				return
			}

			place := 0
			if p, err := strconv.Atoi(cellText(cells, placeIdx)); err == nil {
				place = p
				if p >= 1 && p <= 8 {
					hasFinal = true
				}
			}

			athletes = append(athletes, meet.Athlete{Name: name, Team: team, FinalPlace: place})
		})

		if len(athletes) > 0 {
			result.Athletes = athletes
			if hasFinal {
				result.Status = meet.StatusFinal
			} else {
				result.Status = meet.StatusInProgress
			}
			return false
		}
		return true
	})

	return result
}
