// Package mark normalizes raw result marks ("1:45.23", "6.54", "13-04.50",
// "5.85m", "DNS") into comparable numeric magnitudes.
package mark
