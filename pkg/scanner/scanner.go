// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"context"
	"regexp"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/git"
)

// Wave identifies an ordered fallback group of filename patterns.
type Wave int

const (
	// WaveVersionFiles targets files that conventionally declare a version.
	WaveVersionFiles Wave = 1
	// WaveSourceFiles is the broader source file fallback.
	WaveSourceFiles Wave = 2
)

// AllWaves lists the waves in priority order.
var AllWaves = []Wave{WaveVersionFiles, WaveSourceFiles}

// wavePatterns are the glob patterns per wave. The exact sets are part of
// the tool's compatibility surface.
var wavePatterns = map[Wave][]string{
	WaveVersionFiles: {"*.spec", "setup.cfg", "setup.py", "*/__init__.py", "*.xml", "*.json"},
	WaveSourceFiles:  {"*.php", "*.py"},
}

// Scanner yields the candidate files for a rewrite wave.
//
//counterfeiter:generate -o ../../mocks/scanner.go --fake-name Scanner . Scanner
type Scanner interface {
	Candidates(ctx context.Context, wave Wave) ([]string, error)
}

// waveScanner implements Scanner on top of the tracked file list.
type waveScanner struct {
	git         git.Git
	versionFile string
	waves       map[Wave][]*regexp.Regexp
}

// NewScanner creates a Scanner. A non-empty versionFile overrides every
// wave with exactly that file.
func NewScanner(git git.Git, versionFile string) Scanner {
	waves := make(map[Wave][]*regexp.Regexp, len(wavePatterns))
	for wave, patterns := range wavePatterns {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			compiled = append(compiled, compilePattern(pattern))
		}
		waves[wave] = compiled
	}
	return &waveScanner{
		git:         git,
		versionFile: versionFile,
		waves:       waves,
	}
}

// Candidates returns the tracked files matching the wave's patterns.
// Tracked file state is re-read on every call.
func (s *waveScanner) Candidates(ctx context.Context, wave Wave) ([]string, error) {
	if s.versionFile != "" {
		return []string{s.versionFile}, nil
	}
	files, err := s.git.TrackedFiles(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tracked files")
	}
	patterns := s.waves[wave]
	var candidates []string
	for _, file := range files {
		for _, pattern := range patterns {
			if pattern.MatchString(file) {
				candidates = append(candidates, file)
				break
			}
		}
	}
	return candidates, nil
}
