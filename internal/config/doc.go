// Package config loads, normalizes, and validates discburn configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DISCBURN_LANG environment
// fallback. Besides paths and logging, the Config type carries the default
// burn options a page starts from and the recorders the registry is seeded
// with: physical [[drives]] and declared [[recorders]].
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical tokens, and clear validation errors.
package config
