// Package config loads, validates, and normalizes certgen configuration.
//
// Configuration is read from a TOML file (default
// ~/.config/certgen/config.toml, with a project-local certgen.toml
// fallback). Every field has a usable default so the tool runs without a
// config file at all; the backend origin can additionally be overridden
// through the CERTGEN_API_URL environment variable.
package config
