// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	stderrors "errors"
	"strings"

	libsemver "github.com/Masterminds/semver/v3"
	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
)

// ErrInvalidVersion is returned when a string does not parse as a semantic version.
var ErrInvalidVersion = stderrors.New("invalid version")

// ErrVersionExists is returned when a computed version collides with the tag history.
var ErrVersionExists = stderrors.New("version already exists")

// Version is a semantic version in canonical major.minor.patch[-pre][+build] form.
type Version struct {
	*libsemver.Version
}

// Parse returns the Version for a strict major.minor.patch[-pre][+build] string.
func Parse(ctx context.Context, value string) (*Version, error) {
	parsed, err := libsemver.StrictNewVersion(value)
	if err != nil {
		return nil, errors.Wrapf(ctx, ErrInvalidVersion, "parse version '%s'", value)
	}
	return &Version{Version: parsed}, nil
}

// ParseTag parses a git tag into a Version, stripping the leading v convention.
func ParseTag(ctx context.Context, tag string) (*Version, error) {
	return Parse(ctx, strings.TrimLeft(tag, "v"))
}

// Bump returns the successor version for the given bump class. Pre-release
// and build metadata are always dropped, a bump produces a release version.
func (v *Version) Bump(class BumpClass) *Version {
	switch class {
	case BumpClassMajor:
		return &Version{Version: libsemver.New(v.Major()+1, 0, 0, "", "")}
	case BumpClassMinor:
		return &Version{Version: libsemver.New(v.Major(), v.Minor()+1, 0, "", "")}
	default: // BumpClassPatch
		return &Version{Version: libsemver.New(v.Major(), v.Minor(), v.Patch()+1, "", "")}
	}
}

// Equal reports whether both versions render to the same canonical string.
// Build metadata is significant here, matching tag history membership.
func (v *Version) Equal(other *Version) bool {
	return v.String() == other.String()
}

// History is the set of versions ever tagged.
type History []*Version

// Contains reports whether the history already holds the given version.
func (h History) Contains(version *Version) bool {
	return collection.Contains(h.Strings(), version.String())
}

// Strings returns the canonical string of every version in the history.
func (h History) Strings() []string {
	result := make([]string, len(h))
	for i, version := range h {
		result[i] = version.String()
	}
	return result
}
