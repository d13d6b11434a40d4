// Package config loads, normalizes, and validates Inkwell configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// host and CLI need: state and backup directories, the workspace file
// extension used during drop classification, recents limits, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a canonical workspace extension, and clear validation
// errors.
package config
