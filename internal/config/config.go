// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/tsconfig-paths/models"

// Output formats accepted by [Options.Format].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix is prepended to every env tag on [Options].
const EnvPrefix = "TS_PATHS_"

// Options is the runtime configuration of the tsconfig-paths CLI.
type Options struct {
	// Cwd is the directory resolution starts from. Empty means the process
	// working directory.
	// Env: TS_PATHS_CWD; flags: -P, -project
	Cwd string `env:"CWD"`

	// Format selects the stdout encoding of the outcome: "json" or "yaml".
	// Env: TS_PATHS_FORMAT; flag: -format
	Format string `env:"FORMAT"`

	// LogLevel is a zerolog level name for the stderr logger.
	// Env: TS_PATHS_LOG_LEVEL; flag: -log-level
	LogLevel string `env:"LOG_LEVEL"`

	// ParamsFilePath points at a JSON document holding explicit params. When
	// set, the tsconfig.json on disk is not consulted.
	// Env: TS_PATHS_PARAMS; flags: -p, -params
	ParamsFilePath string `env:"PARAMS"`

	// ShowVersion prints build info and exits. Flag only: -version
	ShowVersion bool `env:"-"`

	// Params is loaded from ParamsFilePath.
	Params *models.ExplicitParams `env:"-"`
}

// DefaultOptions returns the options used when no source sets a field.
func DefaultOptions() *Options {
	return &Options{
		Format:   FormatJSON,
		LogLevel: "info",
	}
}

// GetOptions loads, merges and validates options from the environment, args
// (without the program name) and the explicit params file, in that order.
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
