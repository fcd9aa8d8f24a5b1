// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/semver"
)

// versionShape matches a dotted numeric triple like 1.2.3.
var versionShape = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Rewriter replaces version strings inside a file.
//
//counterfeiter:generate -o ../../mocks/rewriter.go --fake-name Rewriter . Rewriter
type Rewriter interface {
	Apply(ctx context.Context, path string, current *semver.Version, next *semver.Version) (bool, error)
}

// lineRewriter implements Rewriter as an in-process line transform.
type lineRewriter struct{}

// NewRewriter creates a Rewriter.
func NewRewriter() Rewriter {
	return &lineRewriter{}
}

// Apply rewrites the version inside the file and reports whether the
// content changed. With a known current version every line mentioning
// `version` has the old string replaced. Without one, the first line
// mentioning `version` together with a dotted numeric triple has the first
// triple replaced. The file is only written when something changed.
func (r *lineRewriter) Apply(
	ctx context.Context,
	path string,
	current *semver.Version,
	next *semver.Version,
) (bool, error) {
	// #nosec G304 -- path comes from the tracked file scan
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(ctx, err, "read file")
	}

	lines := strings.Split(string(content), "\n")
	var changed bool
	if current != nil {
		changed = replaceKnown(lines, current.String(), next.String())
	} else {
		changed = replaceFirstVersionLine(lines, next.String())
	}
	if !changed {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrap(ctx, err, "stat file")
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return false, errors.Wrap(ctx, err, "write file")
	}
	return true, nil
}

// replaceKnown substitutes oldVersion with newVersion on every line that
// also contains the literal substring `version`. The guard is case
// sensitive, a line writing `VERSION` or `Version:` is missed. Each line
// is handled independently.
func replaceKnown(lines []string, oldVersion string, newVersion string) bool {
	changed := false
	for i, line := range lines {
		if !strings.Contains(line, "version") || !strings.Contains(line, oldVersion) {
			continue
		}
		replaced := strings.ReplaceAll(line, oldVersion, newVersion)
		if replaced != line {
			lines[i] = replaced
			changed = true
		}
	}
	return changed
}

// replaceFirstVersionLine rewrites the first dotted numeric triple on the
// first line containing both the literal substring `version` and such a
// triple. Later matches on the same line and all later lines are left
// alone.
func replaceFirstVersionLine(lines []string, newVersion string) bool {
	for i, line := range lines {
		if !strings.Contains(line, "version") {
			continue
		}
		loc := versionShape.FindStringIndex(line)
		if loc == nil {
			continue
		}
		lines[i] = line[:loc[0]] + newVersion + line[loc[1]:]
		return true
	}
	return false
}
