// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	options []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		options: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := DefaultOptions()
	for _, o := range b.options {
		if err := mergo.Merge(opts, o, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	flagOpts, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, flagOpts)
	return b
}

func (b *optionsBuilder) withJSON() *optionsBuilder {
	var paramsPath string
	for _, o := range b.options {
		if o.ParamsFilePath != "" {
			paramsPath = o.ParamsFilePath
		}
	}

	if paramsPath == "" {
		return b
	}

	jsonOpts, err := parseJSON(paramsPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, jsonOpts)
	return b
}
