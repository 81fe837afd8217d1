package scrape

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/meet-tracker/internal/mark"
)

// DefaultAllCapsTeams lists team names that are themselves all uppercase, so
// the caps-run boundary heuristic below cannot find where the surname ends.
// Checked as suffixes before the heuristic runs. Tunable via configuration.
//
// 'URI' is deliberately excluded: it is a suffix of "Missouri", and including
// it would split "...Missouri" as team "URI". Short codes that end common
// words stay off this list even when that costs a missed split.
var DefaultAllCapsTeams = []string{
	"LSU", "TCU", "SMU", "UAB", "UTSA", "UTEP", "UCF", "BYU",
	"VCU", "UNLV", "UNC", "USC", "UCLA", "UCONN", "USF", "FIU",
	"FAU", "UMBC", "NJIT", "UMass",
}

var (
	yearTag      = regexp.MustCompile(`(?i)\s*\[(?:JR|SR|FR|SO|\d+)\]\s*$`)
	nameTeamEdge = regexp.MustCompile(`([A-Z]{2,})((?:[A-Z][a-z].*))$`)
)

// StripYearTag removes a trailing class-year tag like "[JR]" or "[SO]".
func StripYearTag(raw string) string {
	return strings.TrimSpace(yearTag.ReplaceAllString(raw, ""))
}

// SplitAthleteTeam pulls apart the provider's merged name+team cells:
//
//	"Kaila JACKSONGeorgia [JR]" -> ("Kaila JACKSON", "Georgia")
//	"Brianna LYSTONLSU [SR]"    -> ("Brianna LYSTON", "LSU")
//
// It first checks the known all-caps team suffixes, then looks for the
// boundary where the uppercase surname run meets a TitleCase team name. When
// neither applies the whole string comes back as the name with an empty
// team; callers drop such records.
func SplitAthleteTeam(raw string, allCapsTeams []string) (name, team string) {
	raw = StripYearTag(mark.Clean(raw))
	if raw == "" {
		return "", ""
	}

	upper := strings.ToUpper(raw)
	for _, t := range allCapsTeams {
		if strings.HasSuffix(upper, strings.ToUpper(t)) {
			namePart := strings.TrimSpace(raw[:len(raw)-len(t)])
			if namePart != "" {
				return namePart, t
			}
		}
	}

	if sub := nameTeamEdge.FindStringSubmatchIndex(raw); sub != nil {
		// sub[4]:sub[5] is the TitleCase team group.
		teamPart := strings.TrimSpace(raw[sub[4]:sub[5]])
		namePart := strings.TrimSpace(raw[:sub[4]])
		return namePart, teamPart
	}

	return raw, ""
}
