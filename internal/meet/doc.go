// Package meet defines the data model for a scraped track meet: athletes,
// event entries, events, combined-event results, team scores, and the full
// meet snapshot produced by a scrape.
package meet
