// Package config resolves the run configuration: defaults, the nearest
// Core.toml, an optional explicit file (TOML or YAML) and command-line
// overrides, in that order.
package config
