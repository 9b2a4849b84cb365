// Package config loads, normalizes, and validates simcheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates every knob the CLI needs in one
// pass. Always obtain settings through this package so downstream code
// receives sanitized paths, canonical extension lists, and clear validation
// errors.
package config
