// Package scoring computes the analytical layers over a meet snapshot:
// actual team scores, optimistic ceilings, seed-based projections, the
// leverage index for remaining events, Monte-Carlo win probabilities, and
// per-team scenarios. All functions are state-free: they read a meet.State
// and never mutate it.
package scoring
