// Package config loads and validates credhyg configuration.
//
// Configuration is resolved once at process start from four layers, in
// increasing precedence: built-in defaults, an optional YAML file,
// CREDHYG_* environment variables, and command-line flags (applied by
// the command layer). Validation rejects a non-positive max_age, an
// unusable date_format and unknown log levels or formats before any
// input file is touched.
package config
