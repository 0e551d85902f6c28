// Package config provides environment-based configuration.
//
// All settings have defaults suitable for local development; values are
// read from the process environment and validated at load time.
package config
