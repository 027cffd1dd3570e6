// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tsconfig

import "errors"

var (
	// ErrExtendsCycle is returned when a chain of "extends" leads back to a
	// file already being loaded.
	ErrExtendsCycle = errors.New("tsconfig extends cycle")

	// ErrMalformedConfig wraps syntax and type errors found in a config file.
	ErrMalformedConfig = errors.New("malformed tsconfig")
)
