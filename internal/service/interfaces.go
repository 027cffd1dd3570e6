// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/tsconfig-paths/models"

// ConfigLoaderService turns explicit params or a discovered tsconfig.json into
// a single path-mapping [models.Outcome].
type ConfigLoaderService interface {
	// Resolve never reports the two documented unusable states as errors:
	// they come back as a [models.Failure]. A non-nil error only comes from
	// the discoverer and is returned as is.
	Resolve(req models.ResolutionRequest) (models.Outcome, error)
}
