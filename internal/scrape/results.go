package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pfrederiksen/meet-tracker/internal/mark"
	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

var (
	splitAnnotation = regexp.MustCompile(`\(.*?\)`)
	recordFlagOnly  = regexp.MustCompile(`(?i)^=?(SB|PB|MR|CR|FR|NR|WR)$`)
	squadLetter     = regexp.MustCompile(`\s+[A-Z]$`)
)

// columns holds the header-derived column indices of one result table.
// -1 means the column is absent.
type columns struct {
	athlete int
	place   int
	mark    int
	seed    int
	lane    int
	heat    int
	relay   bool
	ncols   int
}

// parseResultPage extracts athlete records and an inferred status from a
// compiled results page or a start list. Heats appear as separate tables;
// their rows are unioned. A start-list parse always comes back Scheduled so
// a pre-meet page can never look complete.
func parseResultPage(doc *goquery.Document, startList bool, allCapsTeams []string) ([]meet.Athlete, meet.Status) {
	if doc == nil {
		return nil, meet.StatusScheduled
	}

	var athletes []meet.Athlete
	anyPlaces := false

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return
		}

		cols, ok := detectColumns(rows.First(), startList)
		if !ok {
			return
		}

		found, hasPlaces := extractRows(rows, cols, startList, allCapsTeams)
		if len(found) > 0 {
			athletes = append(athletes, found...)
			if hasPlaces {
				anyPlaces = true
			}
		}
	})

	if len(athletes) == 0 {
		return nil, meet.StatusScheduled
	}
	if startList {
		return athletes, meet.StatusScheduled
	}
	if anyPlaces || anyMark(athletes) {
		return athletes, meet.StatusFinal
	}
	return athletes, meet.StatusInProgress
}

// detectColumns reads the header row and locates the columns we care about.
// Tables without an athlete (or relay team) column, and tables that have one
// but none of the result-shaped columns -- the meet-records table is the
// usual offender -- are rejected.
func detectColumns(header *goquery.Selection, startList bool) (columns, bool) {
	var texts []string
	header.Find("th, td").Each(func(_ int, c *goquery.Selection) {
		texts = append(texts, strings.ToLower(strings.TrimSpace(c.Text())))
	})

	hasAthlete := contains(texts, "athlete")
	relay := contains(texts, "team") && !hasAthlete
	if !hasAthlete && !relay {
		return columns{}, false
	}

	resultShaped := false
	for _, h := range []string{"pl", "time", "sb", "ln", "ht"} {
		if contains(texts, h) {
			resultShaped = true
			break
		}
	}
	if !resultShaped {
		return columns{}, false
	}

	cols := columns{athlete: -1, place: -1, mark: -1, seed: -1, lane: -1, heat: -1, ncols: len(texts)}
	for i, h := range texts {
		switch {
		case h == "athlete" || (relay && h == "team"):
			cols.athlete = i
		case h == "pl" || h == "place":
			cols.place = i
		case h == "time" || h == "mark" || h == "distance" || h == "height":
			cols.mark = i
		case h == "sb":
			cols.seed = i
		case h == "ln" || h == "lane":
			cols.lane = i
		case h == "ht":
			cols.heat = i
		}
	}
	if cols.athlete < 0 {
		return columns{}, false
	}
	cols.relay = relay

	// Results pages sometimes omit a labeled mark column; the mark then
	// sits in the cell right after the athlete.
	if cols.mark < 0 && !startList {
		cols.mark = cols.athlete + 1
	}
	return cols, true
}

// extractRows walks the data rows of one table. Some start lists ship
// malformed markup where <td> cells sit directly under <tbody> with no <tr>
// wrappers; the HTML parser folds those into one oversized implied row, so
// any row wider than the header is regrouped using the header's column count.
func extractRows(rows *goquery.Selection, cols columns, startList bool, allCapsTeams []string) ([]meet.Athlete, bool) {
	var dataRows [][]*goquery.Selection
	addRow := func(cells []*goquery.Selection) {
		if len(cells) <= cols.ncols || cols.ncols == 0 {
			dataRows = append(dataRows, cells)
			return
		}
		for i := 0; i < len(cells); i += cols.ncols {
			end := i + cols.ncols
			if end > len(cells) {
				end = len(cells)
			}
			dataRows = append(dataRows, cells[i:end])
		}
	}

	// Walk every row after the header, wherever the parser put it: a bare
	// header tr and an explicit tbody end up in separate tbody elements, so
	// scoping to one tbody would drop the other's rows.
	rows.Each(func(i int, r *goquery.Selection) {
		if i == 0 {
			return
		}
		addRow(rowCells(r))
	})

	var found []meet.Athlete
	hasPlaces := false

	for _, cells := range dataRows {
		if len(cells) == 0 || cols.athlete >= len(cells) {
			continue
		}

		rawAthlete := cellText(cells, cols.athlete)
		if rawAthlete == "" || strings.EqualFold(rawAthlete, "athlete") || strings.EqualFold(rawAthlete, "name") ||
			(cols.relay && strings.EqualFold(rawAthlete, "team")) {
			continue
		}

		name, team, ok := athleteNameTeam(cells[cols.athlete], rawAthlete, cols.relay, allCapsTeams)
		if !ok {
			continue
		}

		placeStr := ""
		if cols.place >= 0 {
			placeStr = cellText(cells, cols.place)
		} else {
			// "Pl" is usually column 0 even when the header missed it.
			placeStr = cellText(cells, 0)
		}
		place := 0
		if p, err := strconv.Atoi(placeStr); err == nil {
			place = p
			if p >= 1 && p <= 8 {
				hasPlaces = true
			}
		}

		markStr := ""
		if cols.mark >= 0 {
			markStr = cellText(cells, cols.mark)
		}
		markStr = strings.TrimSpace(splitAnnotation.ReplaceAllString(markStr, ""))

		seed := ""
		if cols.seed >= 0 {
			seed = cellText(cells, cols.seed)
		}
		if recordFlagOnly.MatchString(seed) {
			seed = ""
		}

		a := meet.Athlete{
			Name:       name,
			Team:       team,
			SeedMark:   seed,
			FinalPlace: place,
		}
		if !startList {
			a.FinalMark = markStr
		}
		found = append(found, a)
	}

	return found, hasPlaces
}

// athleteNameTeam resolves the name and team from one athlete cell. Result
// cells come in three shapes: relay cells (<a>Team</a> plus an abbreviation
// in <small>), individual cells with the team in <small>, and fully merged
// text needing the splitter.
func athleteNameTeam(cell *goquery.Selection, raw string, relay bool, allCapsTeams []string) (string, string, bool) {
	small := cell.Find("small").First()
	anchor := cell.Find("a").First()

	if relay {
		var team string
		if anchor.Length() > 0 {
			team = strings.TrimSpace(anchor.Text())
		} else {
			// Anchorless cells are often shouted ("AUBURN"); fold them to
			// the same form anchored rows use so team totals aggregate.
			team = cases.Title(language.English).String(strings.ToLower(raw))
		}
		team = strings.TrimSpace(squadLetter.ReplaceAllString(team, ""))
		if team == "" {
			return "", "", false
		}
		return team + " Relay", team, true
	}

	var name, team string
	if small.Length() > 0 {
		name = raw
		if anchor.Length() > 0 {
			name = strings.TrimSpace(anchor.Text())
		}
		team = StripYearTag(strings.TrimSpace(small.Text()))
	} else {
		name, team = SplitAthleteTeam(raw, allCapsTeams)
	}
	if name == "" || team == "" {
		return "", "", false
	}
	return name, team, true
}

func rowCells(row *goquery.Selection) []*goquery.Selection {
	var cells []*goquery.Selection
	row.Find("td, th").Each(func(_ int, c *goquery.Selection) {
		cells = append(cells, c)
	})
	return cells
}

func cellText(cells []*goquery.Selection, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return mark.Clean(strings.TrimSpace(cells[idx].Text()))
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func anyMark(athletes []meet.Athlete) bool {
	for _, a := range athletes {
		if a.FinalMark != "" {
			return true
		}
	}
	return false
}
