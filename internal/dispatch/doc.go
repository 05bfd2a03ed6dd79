// Package dispatch runs card conversions across a bounded worker pool.
//
// Results come back as one Outcome per card in submission order, so a
// failed card never hides or reorders its neighbours' results.
package dispatch
