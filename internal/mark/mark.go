package mark

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	parenthetical  = regexp.MustCompile(`\s*\(.*\)`)
	trailingLetter = regexp.MustCompile(`[a-zA-Z]$`)
	feetInches     = regexp.MustCompile(`^(\d+)-([\d.]+)`)
)

// Statuses that carry no comparable mark.
var unparseable = map[string]bool{
	"DNS": true, "DNF": true, "DQ": true, "NH": true, "NM": true, "FOUL": true, "": true,
}

// Clean strips non-breaking spaces and collapses doubled spaces out of a raw
// cell value.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, "  ", " ")
	return s
}

// Magnitude converts a mark string to a positive comparable value: seconds
// for times ("1:45.23" -> 105.23, "6.54" -> 6.54), total inches for
// feet-inches field marks ("13-04.50" -> 160.5), and the plain float for
// metric field marks ("5.85m" -> 5.85). Wind and split annotations in
// parentheses and a trailing unit letter are stripped first.
//
// The second return is false for DNS/DNF/DQ/NH/NM/FOUL, blanks, and anything
// else that does not parse. Which direction is "better" is a property of the
// event class, applied by the caller; unparseable marks must sort last either
// way.
func Magnitude(raw string) (float64, bool) {
	m := strings.ToUpper(Clean(raw))
	if unparseable[m] {
		return 0, false
	}
	m = parenthetical.ReplaceAllString(m, "")
	m = strings.TrimSpace(trailingLetter.ReplaceAllString(m, ""))

	if sub := feetInches.FindStringSubmatch(m); sub != nil {
		feet, errF := strconv.ParseFloat(sub[1], 64)
		inches, errI := strconv.ParseFloat(sub[2], 64)
		if errF != nil || errI != nil {
			return 0, false
		}
		return feet*12 + inches, true
	}

	if strings.Contains(m, ":") {
		parts := strings.SplitN(m, ":", 2)
		minutes, errM := strconv.ParseFloat(parts[0], 64)
		seconds, errS := strconv.ParseFloat(parts[1], 64)
		if errM != nil || errS != nil {
			return 0, false
		}
		return minutes*60 + seconds, true
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
