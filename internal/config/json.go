// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/tsconfig-paths/models"
)

func parseJSON(paramsFilePath string) (*Options, error) {
	paramsFile, err := os.Open(paramsFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading params json file: %w", err)
	}
	defer paramsFile.Close()

	var params models.ExplicitParams
	if err := json.NewDecoder(paramsFile).Decode(&params); err != nil {
		return nil, fmt.Errorf("error decoding params json: %w", err)
	}

	return &Options{Params: &params}, nil
}
