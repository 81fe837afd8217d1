// Package cli wires the scrape and scoring layers into the meet-tracker
// command: a one-shot check, a per-team scenario report, and a watch loop.
package cli
