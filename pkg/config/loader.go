// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"

	"github.com/bborbe/bump/pkg/semver"
)

// configFilename is the per project config file read from the project directory.
const configFilename = ".bump.yaml"

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name Loader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	dir string
}

// NewLoader creates a Loader that reads .bump.yaml inside the project directory.
func NewLoader(dir string) Loader {
	return &fileLoader{
		dir: dir,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	BumpClass           *semver.BumpClass `yaml:"bumpClass"`
	SkipCommit          *bool             `yaml:"skipCommit"`
	CreateTag           *bool             `yaml:"tag"`
	Push                *bool             `yaml:"push"`
	Stash               *bool             `yaml:"stash"`
	TagFormat           *string           `yaml:"tagFormat"`
	TagMessageFormat    *string           `yaml:"tagMessageFormat"`
	CommitMessageFormat *string           `yaml:"commitMessageFormat"`
	VersionFile         *string           `yaml:"versionFile"`
	Verbose             *bool             `yaml:"verbose"`
}

// Load reads the config file and merges it over the defaults. A missing
// file returns plain defaults. Validation runs after the command line
// overrides are applied, not here.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	cfg := Defaults()
	cfg.Dir = l.dir

	// #nosec G304 -- the config path is derived from the project directory argument
	data, err := os.ReadFile(filepath.Join(l.dir, configFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	if partial.BumpClass != nil {
		cfg.BumpClass = *partial.BumpClass
	}
	if partial.SkipCommit != nil {
		cfg.SkipCommit = *partial.SkipCommit
	}
	if partial.CreateTag != nil {
		cfg.CreateTag = *partial.CreateTag
	}
	if partial.Push != nil {
		cfg.Push = *partial.Push
	}
	if partial.Stash != nil {
		cfg.Stash = *partial.Stash
	}
	if partial.TagFormat != nil {
		cfg.TagFormat = *partial.TagFormat
	}
	if partial.TagMessageFormat != nil {
		cfg.TagMessageFormat = *partial.TagMessageFormat
	}
	if partial.CommitMessageFormat != nil {
		cfg.CommitMessageFormat = *partial.CommitMessageFormat
	}
	if partial.VersionFile != nil {
		cfg.VersionFile = *partial.VersionFile
	}
	if partial.Verbose != nil {
		cfg.Verbose = *partial.Verbose
	}

	return cfg, nil
}
