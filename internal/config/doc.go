// Package config assembles the tsconfig-paths CLI options.
//
// Options are read from the following sources; a later source overrides the
// non-zero fields of an earlier one:
//  1. Environment variables (TS_PATHS_ prefix)
//  2. Command-line flags
//  3. Explicit params JSON file (path taken from sources 1 and 2)
//
// The entry point is [GetOptions].
package config
