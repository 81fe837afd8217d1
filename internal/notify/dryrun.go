package notify

import (
	"fmt"
	"io"
)

// DryRun prints what would be sent without delivering anything.
type DryRun struct {
	w io.Writer
}

// NewDryRun creates a dry-run notifier writing to w.
func NewDryRun(w io.Writer) *DryRun {
	return &DryRun{w: w}
}

// Notify prints the digest subject and new finals.
func (n *DryRun) Notify(d *Digest) error {
	fmt.Fprintf(n.w, "--- Notification (dry run) ---\n")
	fmt.Fprintf(n.w, "Subject: %s\n", BuildSubject(d))
	for _, name := range d.NewFinals {
		fmt.Fprintf(n.w, "  new final: %s\n", name)
	}
	return nil
}
