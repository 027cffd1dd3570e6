// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/tsconfig-paths/internal/logger"
	"github.com/MKhiriev/tsconfig-paths/internal/tsconfig"
	"github.com/MKhiriev/tsconfig-paths/models"
)

type configLoaderService struct {
	discoverer tsconfig.Discoverer
	getEnv     models.EnvFunc

	logger *logger.Logger
}

// NewConfigLoaderService returns a [ConfigLoaderService] that consults
// discoverer when a request carries no explicit params. A nil discoverer
// selects the file-based tsconfig loader; a nil logger discards output.
func NewConfigLoaderService(discoverer tsconfig.Discoverer, log *logger.Logger) ConfigLoaderService {
	log = logger.OrNop(log)
	if discoverer == nil {
		discoverer = tsconfig.NewLoader(log)
	}

	return &configLoaderService{
		discoverer: discoverer,
		getEnv:     os.Getenv,
		logger:     log.Named("config-loader"),
	}
}

// LoadConfig resolves the configuration for cwd with the default file-based
// discoverer. An empty cwd means the process working directory.
func LoadConfig(cwd string) (models.Outcome, error) {
	if cwd == "" {
		cwd = WorkingDir()
	}
	return NewConfigLoaderService(nil, nil).Resolve(models.ResolutionRequest{Cwd: cwd})
}

// WorkingDir is the only place the resolver reads the process working
// directory. It falls back to "." when the directory cannot be determined.
func WorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (s *configLoaderService) Resolve(req models.ResolutionRequest) (models.Outcome, error) {
	if req.ExplicitParams != nil {
		return s.fromExplicitParams(req.Cwd, *req.ExplicitParams), nil
	}

	discoverer := s.discoverer
	if req.Discover != nil {
		discoverer = tsconfig.DiscovererFunc(req.Discover)
	}

	loadResult, err := discoverer.Discover(models.DiscoveryParams{
		Cwd:    req.Cwd,
		GetEnv: s.getEnv,
	})
	if err != nil {
		return nil, err
	}

	if loadResult.TsConfigPath == "" {
		s.logger.Debug().Str("cwd", req.Cwd).Msg(models.MsgConfigNotFound)
		return models.NewFailure(models.ErrConfigNotFound), nil
	}

	if loadResult.BaseURL == "" {
		s.logger.Debug().Str("tsconfig", loadResult.TsConfigPath).Msg(models.MsgBaseURLMissing)
		return models.NewFailure(models.ErrBaseURLMissing), nil
	}

	// Relative baseUrl is anchored at the config file, which may live above cwd.
	tsConfigDir := filepath.Dir(loadResult.TsConfigPath)
	absoluteBaseURL := absolutePath(filepath.Join(tsConfigDir, loadResult.BaseURL))

	paths := loadResult.Paths
	if paths == nil {
		paths = map[string][]string{}
	}

	s.logger.Debug().
		Str("tsconfig", loadResult.TsConfigPath).
		Str("absoluteBaseUrl", absoluteBaseURL).
		Msg("config resolved from tsconfig")

	return models.Success{
		ConfigFileAbsolutePath: loadResult.TsConfigPath,
		BaseURL:                loadResult.BaseURL,
		AbsoluteBaseURL:        absoluteBaseURL,
		Paths:                  paths,
	}, nil
}

func (s *configLoaderService) fromExplicitParams(cwd string, params models.ExplicitParams) models.Success {
	absoluteBaseURL := params.BaseURL
	if !filepath.IsAbs(absoluteBaseURL) {
		absoluteBaseURL = absolutePath(filepath.Join(cwd, params.BaseURL))
	}

	s.logger.Debug().
		Str("baseUrl", params.BaseURL).
		Str("absoluteBaseUrl", absoluteBaseURL).
		Msg("config resolved from explicit params")

	return models.Success{
		ConfigFileAbsolutePath: "",
		BaseURL:                params.BaseURL,
		AbsoluteBaseURL:        absoluteBaseURL,
		Paths:                  params.Paths,
		MainFields:             params.MainFields,
		AddMatchAll:            params.AddMatchAll,
		MatchAfterOriginal:     params.MatchAfterOriginal,
	}
}

// absolutePath anchors p at the process working directory when a caller
// handed in a relative cwd or config path.
func absolutePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
