package scrape

import (
	"testing"

	"github.com/pfrederiksen/meet-tracker/internal/meet"
)

const scoresPageHTML = `
<html><body>
<table>
  <tr><th>Schedule</th><th>Time</th></tr>
  <tr><td>60m Hurdles</td><td>10:00 AM</td></tr>
</table>
<table>
  <tr><th>Pl</th><th>Name</th><th>Team</th><th>Points</th></tr>
  <tr><td>1</td><td>Jane DOE</td><td>Georgia</td><td>4512</td></tr>
  <tr><td>2</td><td>Ann SMITH</td><td>LSU</td><td>4488</td></tr>
  <tr><td>3</td><td>Kate JONES</td><td>Texas Tech</td><td>4470</td></tr>
</table>
</body></html>`

func TestParseScoresPage(t *testing.T) {
	doc := docFromHTML(t, scoresPageHTML)
	result := parseScoresPage(doc, "Women Pentathlon", meet.Women, DefaultAllCapsTeams)

	if result.EventName != "Women Pentathlon" || result.Gender != meet.Women {
		t.Errorf("identity = %q / %q", result.EventName, result.Gender)
	}
	if result.Status != meet.StatusFinal {
		t.Errorf("status = %q, want %q", result.Status, meet.StatusFinal)
	}
	if !result.Complete() {
		t.Error("completed standings should report Complete")
	}
	if len(result.Athletes) != 3 {
		t.Fatalf("got %d athletes, want 3", len(result.Athletes))
	}
	if result.Athletes[0].Name != "Jane DOE" || result.Athletes[0].Team != "Georgia" || result.Athletes[0].FinalPlace != 1 {
		t.Errorf("first athlete = %+v", result.Athletes[0])
	}
	if result.Athletes[1].Team != "LSU" {
		t.Errorf("second team = %q", result.Athletes[1].Team)
	}
}

func TestParseScoresPageMergedCells(t *testing.T) {
	html := `
<table>
  <tr><th>#</th><th>Athlete</th><th>Points</th></tr>
  <tr><td>1</td><td>Jane DOEGeorgia [SO]</td><td>4512</td></tr>
</table>`
	doc := docFromHTML(t, html)
	result := parseScoresPage(doc, "Women Pentathlon", meet.Women, DefaultAllCapsTeams)

	if len(result.Athletes) != 1 {
		t.Fatalf("got %d athletes, want 1", len(result.Athletes))
	}
	a := result.Athletes[0]
	if a.Name != "Jane DOE" || a.Team != "Georgia" || a.FinalPlace != 1 {
		t.Errorf("athlete = %+v", a)
	}
}

func TestParseScoresPageInProgress(t *testing.T) {
	html := `
<table>
  <tr><th>Pl</th><th>Name</th><th>Team</th></tr>
  <tr><td></td><td>Jane DOE</td><td>Georgia</td></tr>
</table>`
	doc := docFromHTML(t, html)
	result := parseScoresPage(doc, "Women Pentathlon", meet.Women, DefaultAllCapsTeams)

	if result.Status != meet.StatusInProgress {
		t.Errorf("status = %q, want %q", result.Status, meet.StatusInProgress)
	}
	if result.Complete() {
		t.Error("in-progress standings must not report Complete")
	}
}

func TestParseScoresPageEmpty(t *testing.T) {
	result := parseScoresPage(nil, "Women Pentathlon", meet.Women, DefaultAllCapsTeams)
	if result.Status != meet.StatusScheduled || len(result.Athletes) != 0 {
		t.Errorf("nil doc = %+v", result)
	}
}
