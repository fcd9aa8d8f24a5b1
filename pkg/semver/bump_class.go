// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// BumpClass selects which version component a bump increments.
const (
	BumpClassMajor BumpClass = "major"
	BumpClassMinor BumpClass = "minor"
	BumpClassPatch BumpClass = "patch"
)

// AvailableBumpClasses contains all valid bump class values.
var AvailableBumpClasses = BumpClasses{BumpClassMajor, BumpClassMinor, BumpClassPatch}

// BumpClass is a string-based enum for bump classes.
type BumpClass string

func (b BumpClass) String() string {
	return string(b)
}

func (b BumpClass) Validate(ctx context.Context) error {
	if !AvailableBumpClasses.Contains(b) {
		return errors.Wrapf(ctx, validation.Error, "unknown bump class '%s'", b)
	}
	return nil
}

func (b BumpClass) Ptr() *BumpClass {
	return &b
}

// BumpClasses is a collection of BumpClass values.
type BumpClasses []BumpClass

func (b BumpClasses) Contains(class BumpClass) bool {
	return collection.Contains(b, class)
}

// ParseBumpClass maps a command line value to a BumpClass. The short
// aliases m, n and p are accepted alongside the full names.
func ParseBumpClass(ctx context.Context, value string) (BumpClass, error) {
	switch value {
	case "m", "major":
		return BumpClassMajor, nil
	case "n", "minor":
		return BumpClassMinor, nil
	case "p", "patch":
		return BumpClassPatch, nil
	}
	return "", errors.Wrapf(ctx, validation.Error, "unknown bump class '%s'", value)
}
