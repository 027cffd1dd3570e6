// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvFunc looks up an environment variable. An empty string means unset.
type EnvFunc func(key string) string

// DiscoveryParams is what a tsconfig discoverer receives.
type DiscoveryParams struct {
	// Cwd is the directory discovery starts from. It may also point
	// directly at a config file.
	Cwd string

	// GetEnv gives access to environment overrides such as TS_NODE_PROJECT.
	GetEnv EnvFunc
}

// Env returns the value of key through GetEnv, or "" when no accessor is set.
func (p DiscoveryParams) Env(key string) string {
	if p.GetEnv == nil {
		return ""
	}
	return p.GetEnv(key)
}

// DiscoverFunc locates and parses a tsconfig.json for the given params.
type DiscoverFunc func(params DiscoveryParams) (DiscoveryResult, error)

// DiscoveryResult is the structured outcome of locating and parsing a
// tsconfig.json. Zero values mean "not found" / "not set".
type DiscoveryResult struct {
	// TsConfigPath is the absolute path of the discovered file, or "".
	TsConfigPath string

	// BaseURL is compilerOptions.baseUrl as declared (after extends
	// flattening and env overrides), or "".
	BaseURL string

	// Paths is compilerOptions.paths, or nil when the file declares none.
	Paths map[string][]string
}
