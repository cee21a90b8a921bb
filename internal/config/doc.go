// Package config builds the effective runtime configuration for revu.
//
// Sources are merged lowest-precedence first: built-in defaults, an optional
// .env file in the working directory, an optional YAML config file in the
// platform config directory, the process environment, and finally CLI flag
// overrides.
package config
