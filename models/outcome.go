// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
)

// ResultType discriminates the two [Outcome] variants.
type ResultType string

const (
	// ResultSuccess tags a [Success] outcome.
	ResultSuccess ResultType = "success"

	// ResultFailed tags a [Failure] outcome.
	ResultFailed ResultType = "failed"
)

// Failure messages. They are part of the observable contract.
const (
	MsgConfigNotFound = "Couldn't find tsconfig.json"
	MsgBaseURLMissing = "Missing baseUrl in compilerOptions"
)

// Sentinel errors matching the two failure kinds, returned by [Failure.Err].
var (
	ErrConfigNotFound = errors.New(MsgConfigNotFound)
	ErrBaseURLMissing = errors.New(MsgBaseURLMissing)
)

// Outcome is the result of a config resolution: exactly one of [Success] or
// [Failure]. The interface is sealed; use a type switch or ResultType to
// branch.
type Outcome interface {
	ResultType() ResultType
	isOutcome()
}

// Success is a usable path-mapping configuration.
type Success struct {
	// ConfigFileAbsolutePath is the discovered tsconfig.json, or "" when the
	// configuration came from explicit params.
	ConfigFileAbsolutePath string `json:"configFileAbsolutePath" yaml:"configFileAbsolutePath"`

	// BaseURL is the base directory exactly as declared.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// AbsoluteBaseURL is BaseURL anchored to an absolute directory.
	AbsoluteBaseURL string `json:"absoluteBaseUrl" yaml:"absoluteBaseUrl"`

	Paths map[string][]string `json:"paths" yaml:"paths"`

	// The fields below are only ever set from explicit params. Nil means the
	// caller-side default applies, which is not the same as an explicit false.
	MainFields         []string `json:"mainFields,omitempty" yaml:"mainFields,omitempty"`
	AddMatchAll        *bool    `json:"addMatchAll,omitempty" yaml:"addMatchAll,omitempty"`
	MatchAfterOriginal *bool    `json:"matchAfterOriginal,omitempty" yaml:"matchAfterOriginal,omitempty"`
}

// ResultType implements [Outcome].
func (Success) ResultType() ResultType { return ResultSuccess }

func (Success) isOutcome() {}

// MarshalJSON adds the resultType discriminant.
func (s Success) MarshalJSON() ([]byte, error) {
	type plain Success
	return json.Marshal(struct {
		ResultType ResultType `json:"resultType"`
		plain
	}{ResultSuccess, plain(s)})
}

// MarshalYAML adds the resultType discriminant.
func (s Success) MarshalYAML() (any, error) {
	type plain Success
	return struct {
		ResultType ResultType `yaml:"resultType"`
		plain      `yaml:",inline"`
	}{ResultSuccess, plain(s)}, nil
}

// Failure reports which precondition of a file-based resolution was unmet.
type Failure struct {
	Message string `json:"message" yaml:"message"`

	err error
}

// NewFailure builds a [Failure] from one of the sentinel errors.
func NewFailure(err error) Failure {
	return Failure{Message: err.Error(), err: err}
}

// ResultType implements [Outcome].
func (Failure) ResultType() ResultType { return ResultFailed }

func (Failure) isOutcome() {}

// Err returns the sentinel error for this failure kind, suitable for
// errors.Is. It is nil for failures not built with [NewFailure].
func (f Failure) Err() error {
	return f.err
}

// MarshalJSON adds the resultType discriminant.
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ResultType ResultType `json:"resultType"`
		Message    string     `json:"message"`
	}{ResultFailed, f.Message})
}

// MarshalYAML adds the resultType discriminant.
func (f Failure) MarshalYAML() (any, error) {
	return struct {
		ResultType ResultType `yaml:"resultType"`
		Message    string     `yaml:"message"`
	}{ResultFailed, f.Message}, nil
}
