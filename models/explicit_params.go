// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExplicitParams is path-mapping configuration supplied directly by the caller.
// When present in a [ResolutionRequest] it takes total precedence over any
// tsconfig.json that could be discovered on disk.
type ExplicitParams struct {
	// BaseURL is the directory relative module paths are interpreted against.
	// It may be relative (to the working directory) or absolute.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Paths maps an alias pattern (e.g. "@app/*") to the ordered list of
	// substitution paths tried for it.
	Paths map[string][]string `json:"paths" yaml:"paths"`

	// MainFields lists package.json fields consulted, in order, when
	// resolving a package entry point. Nil means "use the caller default".
	MainFields []string `json:"mainFields,omitempty" yaml:"mainFields,omitempty"`

	// AddMatchAll asks the matcher to synthesize a catch-all "*" mapping.
	AddMatchAll *bool `json:"addMatchAll,omitempty" yaml:"addMatchAll,omitempty"`

	// MatchAfterOriginal makes wildcard matches be tried after the original
	// specifier instead of before it.
	MatchAfterOriginal *bool `json:"matchAfterOriginal,omitempty" yaml:"matchAfterOriginal,omitempty"`
}

// ResolutionRequest is the input of a single config resolution.
type ResolutionRequest struct {
	// Cwd is the working directory used to anchor a relative explicit
	// BaseURL and as the starting point for tsconfig discovery.
	Cwd string

	// ExplicitParams, when non-nil, bypasses discovery entirely.
	ExplicitParams *ExplicitParams

	// Discover overrides the resolver's discoverer for this request only.
	Discover DiscoverFunc
}
