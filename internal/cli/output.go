package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pfrederiksen/meet-tracker/internal/scoring"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// CheckResult is what one check cycle reports.
type CheckResult struct {
	CheckedAt time.Time       `json:"checked_at"`
	MeetName  string          `json:"meet_name"`
	NewFinals []string        `json:"new_finals"`
	Women     *scoring.Result `json:"women"`
	Men       *scoring.Result `json:"men"`
}

func writeCheck(w io.Writer, result *CheckResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "%s (checked %s)\n", result.MeetName, result.CheckedAt.Format(time.RFC3339))

	if len(result.NewFinals) == 0 {
		fmt.Fprintln(w, "No new finals since last check.")
	} else {
		fmt.Fprintf(w, "%d new final(s):\n", len(result.NewFinals))
		for _, name := range result.NewFinals {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	writeStandings(w, "Women", result.Women)
	writeStandings(w, "Men", result.Men)
	writeSchedule(w, "Women", result.Women)
	writeSchedule(w, "Men", result.Men)
	return nil
}

func writeSchedule(w io.Writer, label string, result *scoring.Result) {
	if result == nil || result.State == nil {
		return
	}
	events := result.State.EventsByGender(result.Gender)
	if len(events) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s schedule:\n", label)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range events {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Name, e.Round, e.Status)
	}
	tw.Flush()
}

func writeStandings(w io.Writer, label string, result *scoring.Result) {
	if result == nil || len(result.TeamScores) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s standings (by projected score):\n", label)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tACTUAL\tPROJECTED\tCEILING\tWIN %")
	for _, ts := range result.TeamScores {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%.1f\n",
			ts.Team, ts.ActualPoints, ts.SeedProjection, ts.Ceiling, ts.WinProbability)
	}
	tw.Flush()

	if len(result.Leverage) > 0 {
		fmt.Fprintf(w, "\n%s leverage events:\n", label)
		for _, lev := range result.Leverage {
			fmt.Fprintf(w, "  %s\n", lev.Headline)
		}
	}
}

func writeScenario(w io.Writer, scenario *scoring.TeamScenario, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, scenario)
	}

	fmt.Fprintf(w, "%s: current %.1f\n", scenario.Team, scenario.Current)
	fmt.Fprintf(w, "  seeds hold: %.1f\n", scenario.SeedsHold)
	fmt.Fprintf(w, "  best case:  %.1f\n", scenario.BestCase)
	fmt.Fprintf(w, "  worst case: %.1f\n", scenario.WorstCase)

	for _, ev := range scenario.Breakdown {
		fmt.Fprintf(w, "\n%s (seeds hold %.1f, best %.1f):\n", ev.Event, ev.SeedsHoldPts, ev.BestCasePts)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  ATHLETE\tSEED\tPROJ PLACE\tSEED PTS")
		for _, a := range ev.Athletes {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%.1f\n", a.Athlete, a.SeedMark, a.ProjectedPlace, a.SeedPts)
		}
		tw.Flush()
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
