// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tsconfig is the subset of a tsconfig.json document used for path mapping.
type Tsconfig struct {
	// Extends names another config file whose settings this one inherits.
	Extends string `mapstructure:"extends"`

	CompilerOptions CompilerOptions `mapstructure:"compilerOptions"`
}

// CompilerOptions holds the path-mapping related compiler options.
type CompilerOptions struct {
	BaseURL string              `mapstructure:"baseUrl"`
	Paths   map[string][]string `mapstructure:"paths"`
}
