package notify

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/meet-tracker/internal/scoring"
)

// BuildSubject names up to three newly-final events in the subject line.
func BuildSubject(d *Digest) string {
	if len(d.NewFinals) == 0 {
		return fmt.Sprintf("%s: standings update", d.MeetName)
	}
	shown := d.NewFinals
	more := ""
	if len(shown) > 3 {
		more = fmt.Sprintf(" +%d more", len(shown)-3)
		shown = shown[:3]
	}
	return fmt.Sprintf("%s: %s%s final", d.MeetName, strings.Join(shown, ", "), more)
}

// BuildHTMLBody renders the digest as a small self-contained HTML document
// with a standings table per gender.
func BuildHTMLBody(d *Digest) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString(fmt.Sprintf("<h2>%s</h2>", d.MeetName))

	if len(d.NewFinals) > 0 {
		b.WriteString("<p><b>Newly completed:</b> ")
		b.WriteString(strings.Join(d.NewFinals, ", "))
		b.WriteString("</p>")
	}

	writeStandings(&b, "Women", d.Women)
	writeStandings(&b, "Men", d.Men)

	b.WriteString("<p style=\"color:#888;font-size:12px\">")
	b.WriteString("Projected scores based on seed marks. Win % from Monte Carlo simulation.")
	b.WriteString("</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func writeStandings(b *strings.Builder, label string, result *scoring.Result) {
	if result == nil || len(result.TeamScores) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("<h3>%s</h3>", label))
	b.WriteString("<table border=\"1\" cellpadding=\"4\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Team</th><th>Actual</th><th>Projected</th><th>Ceiling</th><th>Win %</th></tr>")
	for _, ts := range result.TeamScores {
		b.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%.1f</td><td>%.1f</td><td>%.1f</td><td>%.1f</td></tr>",
			ts.Team, ts.ActualPoints, ts.SeedProjection, ts.Ceiling, ts.WinProbability))
	}
	b.WriteString("</table>")
}
