// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned by [GetOptions].
var (
	// ErrInvalidFormat indicates an output format other than json or yaml.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrUnexpectedArgs indicates positional arguments, which the CLI does not take.
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)
