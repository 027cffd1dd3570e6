// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"dario.cat/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/tailscale/hujson"

	"github.com/MKhiriev/tsconfig-paths/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// LoadTsconfig reads configPath and flattens its "extends" chain. It returns
// nil, nil when configPath does not exist.
func (l *Loader) LoadTsconfig(configPath string) (*models.Tsconfig, error) {
	return l.loadTsconfig(configPath, make(map[string]struct{}))
}

func (l *Loader) loadTsconfig(configPath string, loading map[string]struct{}) (*models.Tsconfig, error) {
	if _, seen := loading[configPath]; seen {
		return nil, fmt.Errorf("%w: %s", ErrExtendsCycle, configPath)
	}

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", configPath, err)
	}
	loading[configPath] = struct{}{}

	cfg, err := parseTsconfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	if cfg.Extends == "" {
		return cfg, nil
	}

	extends := cfg.Extends
	if !strings.Contains(extends, ".json") {
		extends += ".json"
	}

	currentDir := filepath.Dir(configPath)
	extendedPath := filepath.Join(currentDir, extends)
	if strings.Contains(extends, "/") && strings.Contains(extends, ".") && !l.exists(extendedPath) {
		extendedPath = filepath.Join(currentDir, "node_modules", extends)
	}

	l.logger.Debug().Str("tsconfig", configPath).Str("extends", extendedPath).Msg("loading extended config")

	base, err := l.loadTsconfig(extendedPath, loading)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = &models.Tsconfig{}
	}

	// An inherited baseUrl is relative to the base file; make it relative to
	// the extending one.
	if base.CompilerOptions.BaseURL != "" {
		base.CompilerOptions.BaseURL = filepath.Join(filepath.Dir(extends), base.CompilerOptions.BaseURL)
	}

	return mergeTsconfig(*base, *cfg)
}

func parseTsconfig(data []byte) (*models.Tsconfig, error) {
	standard, err := hujson.Standardize(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, errors.Join(ErrMalformedConfig, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(standard, &raw); err != nil {
		return nil, errors.Join(ErrMalformedConfig, err)
	}

	cfg := new(models.Tsconfig)
	if err := mapstructure.Decode(raw, cfg); err != nil {
		return nil, errors.Join(ErrMalformedConfig, err)
	}

	return cfg, nil
}

// mergeTsconfig lays child over base. Non-empty child fields win.
func mergeTsconfig(base, child models.Tsconfig) (*models.Tsconfig, error) {
	merged := base
	if err := mergo.Merge(&merged, child, mergo.WithOverride, mergo.WithTransformers(pathsTransformer{})); err != nil {
		return nil, fmt.Errorf("error merging extended tsconfig: %w", err)
	}

	return &merged, nil
}

// pathsTransformer makes mergo replace a "paths" table instead of merging
// its keys.
type pathsTransformer struct{}

func (pathsTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(map[string][]string(nil)) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}
