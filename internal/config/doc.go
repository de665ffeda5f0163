// Package config provides centralized configuration for trendcli.
//
// Configuration is assembled in three layers: struct tag defaults, TREND_*
// environment variables, and an optional YAML file (TREND_CONFIG_FILE,
// defaulting to trendcli.yaml). The merged result is validated with
// go-playground/validator before use, so invalid analysis tunables such as
// a non-positive forecast horizon are rejected before any report runs.
package config
