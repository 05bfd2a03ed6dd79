// Package report persists conversion run history in SQLite.
//
// Each invocation of the converter becomes one run row plus one outcome row
// per card, written as cards finish. The history command reads the same
// store back for display.
package report
