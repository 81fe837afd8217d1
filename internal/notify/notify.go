package notify

import "github.com/pfrederiksen/meet-tracker/internal/scoring"

// Digest is everything a notification needs: which finals just completed
// and the current analysis for both genders.
type Digest struct {
	MeetName  string
	NewFinals []string
	Women     *scoring.Result
	Men       *scoring.Result
}

// Notifier delivers a digest.
type Notifier interface {
	Notify(d *Digest) error
}
