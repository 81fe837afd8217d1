// Package scrape fetches and parses live results pages for a track meet:
// the meet index, per-event compiled results and start lists, and
// combined-event score pages. It assembles everything into a meet.State
// snapshot, pairing prelims with finals and assigning effective seeds.
//
// The provider's markup is inconsistent across meets and years; parsing is
// defensive throughout. Rows and tables that cannot be understood are
// skipped, never fabricated.
package scrape
