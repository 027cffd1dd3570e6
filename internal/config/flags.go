// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the CLI arguments (without the program name).
//
// Flags:
//
//	-P/-project directory to resolve from
//	-p/-params  JSON file with explicit params
//	-format     output format, json or yaml
//	-log-level  zerolog level name
//	-version    print build info and exit
func ParseFlags(args []string) (*Options, error) {
	var opts Options

	fs := flag.NewFlagSet("tsconfig-paths", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.Cwd, "P", "", "Directory to resolve from")
	fs.StringVar(&opts.Cwd, "project", "", "Directory to resolve from (alias)")
	fs.StringVar(&opts.ParamsFilePath, "p", "", "Explicit params JSON file path")
	fs.StringVar(&opts.ParamsFilePath, "params", "", "Explicit params JSON file path (alias)")
	fs.StringVar(&opts.Format, "format", "", "Output format: json or yaml")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	return &opts, nil
}
