// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tsconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/tsconfig-paths/internal/logger"
	"github.com/MKhiriev/tsconfig-paths/models"
)

const (
	// ConfigFileName is the file looked for while walking up directories.
	ConfigFileName = "tsconfig.json"

	// EnvProject points at the config file (or its directory) to use.
	EnvProject = "TS_NODE_PROJECT"
	// EnvBaseURL overrides compilerOptions.baseUrl.
	EnvBaseURL = "TS_NODE_BASEURL"
)

// DiscovererFunc adapts a plain function to [Discoverer].
type DiscovererFunc func(params models.DiscoveryParams) (models.DiscoveryResult, error)

// Discover calls f(params).
func (f DiscovererFunc) Discover(params models.DiscoveryParams) (models.DiscoveryResult, error) {
	return f(params)
}

// osFileSystem implements FileSystem on the real OS.
type osFileSystem struct{}

func (osFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader is the file-based [Discoverer].
type Loader struct {
	fs     FileSystem
	logger *logger.Logger
}

// NewLoader creates a Loader on the real filesystem. A nil logger discards
// output.
func NewLoader(log *logger.Logger) *Loader {
	return NewLoaderWithFS(osFileSystem{}, log)
}

// NewLoaderWithFS creates a Loader with a custom filesystem.
func NewLoaderWithFS(fs FileSystem, log *logger.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger.OrNop(log).Named("tsconfig"),
	}
}

// Discover implements [Discoverer].
func (l *Loader) Discover(params models.DiscoveryParams) (models.DiscoveryResult, error) {
	configPath, err := l.resolveConfigPath(params.Cwd, params.Env(EnvProject))
	if err != nil {
		return models.DiscoveryResult{}, err
	}
	if configPath == "" {
		l.logger.Debug().Str("cwd", params.Cwd).Msg("no tsconfig.json found")
		return models.DiscoveryResult{}, nil
	}

	cfg, err := l.LoadTsconfig(configPath)
	if err != nil {
		return models.DiscoveryResult{}, err
	}

	result := models.DiscoveryResult{TsConfigPath: configPath}
	if cfg != nil {
		result.BaseURL = cfg.CompilerOptions.BaseURL
		result.Paths = cfg.CompilerOptions.Paths
	}
	if override := params.Env(EnvBaseURL); override != "" {
		l.logger.Debug().Str("baseUrl", override).Msg("baseUrl overridden from " + EnvBaseURL)
		result.BaseURL = override
	}

	l.logger.Debug().
		Str("tsconfig", configPath).
		Str("baseUrl", result.BaseURL).
		Int("paths", len(result.Paths)).
		Msg("tsconfig discovered")

	return result, nil
}

// resolveConfigPath returns the absolute path of the config file to load, or
// "" when none exists.
func (l *Loader) resolveConfigPath(cwd, project string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("error resolving working directory %q: %w", cwd, err)
	}

	if project != "" {
		if !filepath.IsAbs(project) {
			project = filepath.Join(absCwd, project)
		}
		info, err := l.fs.Stat(project)
		if err != nil {
			return "", fmt.Errorf("error reading %s=%q: %w", EnvProject, project, err)
		}
		if info.IsDir() {
			return filepath.Join(project, ConfigFileName), nil
		}
		return filepath.Clean(project), nil
	}

	info, err := l.fs.Stat(absCwd)
	if err != nil {
		return "", fmt.Errorf("error reading working directory %q: %w", absCwd, err)
	}
	if !info.IsDir() {
		return absCwd, nil
	}

	return WalkForTsConfig(absCwd, l.exists), nil
}

func (l *Loader) exists(path string) bool {
	_, err := l.fs.Stat(path)
	return err == nil
}

// WalkForTsConfig looks for tsconfig.json in dir and then in each parent
// directory up to the filesystem root. It returns "" when none exists.
func WalkForTsConfig(dir string, exists func(path string) bool) string {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if exists(candidate) {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
