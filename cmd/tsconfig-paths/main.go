// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/tsconfig-paths/internal/config"
	"github.com/MKhiriev/tsconfig-paths/internal/logger"
	"github.com/MKhiriev/tsconfig-paths/internal/service"
	"github.com/MKhiriev/tsconfig-paths/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1
	exitError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logger.NewLogger("tsconfig-paths", stderr)

	opts, err := config.GetOptions(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting options")
		return exitError
	}

	if opts.ShowVersion {
		if _, err := fmt.Fprint(stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)); err != nil {
			log.Error().Err(err).Msg("error writing build info")
			return exitError
		}
		return exitOK
	}

	if err := log.SetLevel(opts.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return exitError
	}
	log.Debug().Any("options", opts).Msg("received options")

	cwd := opts.Cwd
	if cwd == "" {
		cwd = service.WorkingDir()
	}

	outcome, err := service.NewConfigLoaderService(nil, log).Resolve(models.ResolutionRequest{
		Cwd:            cwd,
		ExplicitParams: opts.Params,
	})
	if err != nil {
		log.Error().Err(err).Str("cwd", cwd).Msg("error loading tsconfig")
		return exitError
	}

	if err := writeOutcome(stdout, opts.Format, outcome); err != nil {
		log.Error().Err(err).Msg("error writing outcome")
		return exitError
	}

	if outcome.ResultType() == models.ResultFailed {
		return exitFailed
	}
	return exitOK
}

func writeOutcome(w io.Writer, format string, outcome models.Outcome) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outcome); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	return nil
}
