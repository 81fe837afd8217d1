// Package storage persists tracker state across runs as a JSON file: the
// set of finals already reported, so each run only announces newly-completed
// events.
package storage
