// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tsconfig

//go:generate mockgen -source=interfaces.go -destination=../mock/tsconfig_mock.go -package=mock

import (
	"os"

	"github.com/MKhiriev/tsconfig-paths/models"
)

// Discoverer finds and parses the tsconfig.json that applies to a working
// directory. An empty [models.DiscoveryResult] with a nil error means no
// config file was found; errors are reserved for unreadable or malformed
// files.
type Discoverer interface {
	Discover(params models.DiscoveryParams) (models.DiscoveryResult, error)
}

// FileSystem is the part of the OS the loader touches.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}
