// Package services provides shared error classification and context helpers
// used across the conversion pipeline.
//
// Errors are tagged with sentinel markers (ErrExternalTool, ErrValidation,
// ErrConfiguration, ...) via Wrap so callers can classify failures with
// errors.Is without depending on concrete error types. Context helpers carry
// the current card and stage so loggers can annotate records uniformly.
package services
