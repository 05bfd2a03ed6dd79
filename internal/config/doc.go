// Package config loads, normalizes, and validates CardConvert configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// CARDCONVERT_CONFIG and CARDCONVERT_BACKGROUNDS_DIR. The Config type
// centralizes every knob the CLI and pipeline need: the card class catalog,
// locale list, worker count, and directory layout.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
