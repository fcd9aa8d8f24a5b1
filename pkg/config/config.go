// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"strings"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/bump/pkg/semver"
)

// Config holds the bump configuration for one invocation.
type Config struct {
	Dir                 string           `yaml:"-"`
	BumpClass           semver.BumpClass `yaml:"bumpClass"`
	SetVersion          string           `yaml:"-"`
	SkipCommit          bool             `yaml:"skipCommit"`
	CreateTag           bool             `yaml:"tag"`
	Push                bool             `yaml:"push"`
	Stash               bool             `yaml:"stash"`
	TagFormat           string           `yaml:"tagFormat"`
	TagMessageFormat    string           `yaml:"tagMessageFormat"`
	CommitMessageFormat string           `yaml:"commitMessageFormat"`
	VersionFile         string           `yaml:"versionFile"`
	Verbose             bool             `yaml:"verbose"`
}

// Defaults returns a Config with all default values. The format strings are
// part of the tool's compatibility surface.
func Defaults() Config {
	return Config{
		Dir:                 ".",
		TagFormat:           "v{version}",
		TagMessageFormat:    "Version {version} Release",
		CommitMessageFormat: "bump to version {version}",
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("dir", validation.NotEmptyString(c.Dir)),
		validation.Name("tagFormat", validation.NotEmptyString(c.TagFormat)),
		validation.Name("tagMessageFormat", validation.NotEmptyString(c.TagMessageFormat)),
		validation.Name("commitMessageFormat", validation.NotEmptyString(c.CommitMessageFormat)),
		validation.Name("bumpClass", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.BumpClass == "" {
				return nil
			}
			return c.BumpClass.Validate(ctx)
		})),
		validation.Name("setVersion", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.BumpClass != "" && c.SetVersion != "" {
				return errors.Errorf(ctx, "bump class and explicit version are mutually exclusive")
			}
			return nil
		})),
	}.Validate(ctx)
}

// TagText renders the tag name for a version.
func (c Config) TagText(version *semver.Version) string {
	return renderFormat(c.TagFormat, version)
}

// TagMessage renders the annotated tag message for a version.
func (c Config) TagMessage(version *semver.Version) string {
	return renderFormat(c.TagMessageFormat, version)
}

// CommitMessage renders the commit message for a version.
func (c Config) CommitMessage(version *semver.Version) string {
	return renderFormat(c.CommitMessageFormat, version)
}

// renderFormat substitutes the {version} placeholder.
func renderFormat(format string, version *semver.Version) string {
	return strings.ReplaceAll(format, "{version}", version.String())
}
