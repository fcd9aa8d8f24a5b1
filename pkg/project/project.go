// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"context"
	stderrors "errors"
	"log"
	"os"
	"path/filepath"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/git"
	"github.com/bborbe/bump/pkg/rewrite"
	"github.com/bborbe/bump/pkg/scanner"
	"github.com/bborbe/bump/pkg/semver"
)

// ErrNoTagsYet is returned when a bump is requested but no version was ever tagged.
var ErrNoTagsYet = stderrors.New("no version tags yet")

// ErrDirtyWorkingTree is returned when the working tree has uncommitted changes.
var ErrDirtyWorkingTree = stderrors.New("working tree has uncommitted changes")

// ErrRewriteNotFound is returned when no wave rewrote any file.
var ErrRewriteNotFound = stderrors.New("version declaration not found")

// Project orchestrates a version bump for one working directory.
//
//counterfeiter:generate -o ../../mocks/project.go --fake-name Project . Project
type Project interface {
	git.Git
	Current() *semver.Version
	State() State
	Bumped() bool
	Bump(ctx context.Context, class semver.BumpClass) (*semver.Version, error)
	SetVersions(ctx context.Context, next *semver.Version) error
	EnsureClean(ctx context.Context, stash bool) (bool, error)
}

// project implements Project.
type project struct {
	git.Git
	dir      string
	scanner  scanner.Scanner
	rewriter rewrite.Rewriter
	current  *semver.Version
	state    State
	bumped   bool
}

// New creates a Project and resolves its current version once from the most
// recent tag. A tag that does not parse counts as no version.
func New(
	ctx context.Context,
	dir string,
	gitAdapter git.Git,
	fileScanner scanner.Scanner,
	rewriter rewrite.Rewriter,
) (Project, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf(ctx, "%s is not a directory", dir)
	}
	p := &project{
		Git:      gitAdapter,
		dir:      dir,
		scanner:  fileScanner,
		rewriter: rewriter,
		state:    StateResolved,
	}
	tag, err := p.CurrentTag(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "resolve current tag")
	}
	if tag != "" {
		if version, err := semver.ParseTag(ctx, tag); err == nil {
			p.current = version
		}
	}
	return p, nil
}

// Current returns the resolved version, or nil when the project was never tagged.
func (p *project) Current() *semver.Version {
	return p.current
}

// State returns the orchestration state.
func (p *project) State() State {
	return p.state
}

// Bumped reports whether a rewrite wave changed the working tree.
func (p *project) Bumped() bool {
	return p.bumped
}

// Bump computes the successor version for the class and checks it against
// the tag history.
func (p *project) Bump(ctx context.Context, class semver.BumpClass) (*semver.Version, error) {
	if err := class.Validate(ctx); err != nil {
		return nil, errors.Wrap(ctx, err, "validate bump class")
	}
	if p.current == nil {
		return nil, errors.Wrapf(ctx, ErrNoTagsYet, "bump %s", class)
	}
	next := p.current.Bump(class)
	history, err := p.history(ctx)
	if err != nil {
		return nil, err
	}
	if history.Contains(next) {
		return nil, errors.Wrapf(ctx, semver.ErrVersionExists, "version '%s' already present", next)
	}
	p.state = StateBumpRequested
	return next, nil
}

// EnsureClean enforces the clean tree precondition before any rewrite. With
// stash enabled a dirty tree is stashed away and true is returned so the
// caller can restore it afterwards.
func (p *project) EnsureClean(ctx context.Context, stash bool) (bool, error) {
	dirty, err := p.IsDirty(ctx)
	if err != nil {
		return false, errors.Wrap(ctx, err, "check working tree")
	}
	if !dirty {
		return false, nil
	}
	if !stash {
		return false, errors.Wrap(ctx, ErrDirtyWorkingTree, "ensure clean")
	}
	log.Printf("bump: stashing changes")
	if err := p.Stash(ctx); err != nil {
		return false, errors.Wrap(ctx, err, "stash changes")
	}
	return true, nil
}

// SetVersions drives the rewrite waves for the next version. The first wave
// that dirties the tree wins; when none does, the state machine lands in
// NoChange and ErrRewriteNotFound is returned.
func (p *project) SetVersions(ctx context.Context, next *semver.Version) error {
	p.state = StateRewriting
	for _, wave := range scanner.AllWaves {
		if err := p.rewriteWave(ctx, wave, next); err != nil {
			return err
		}
		dirty, err := p.IsDirty(ctx)
		if err != nil {
			return errors.Wrap(ctx, err, "check working tree")
		}
		if dirty {
			p.bumped = true
			p.state = StateBumped
			return nil
		}
	}
	p.state = StateNoChange
	return errors.Wrap(ctx, ErrRewriteNotFound, "rewrite waves")
}

// rewriteWave applies the rewriter to every candidate of the wave. A file
// level failure only skips that file.
func (p *project) rewriteWave(ctx context.Context, wave scanner.Wave, next *semver.Version) error {
	candidates, err := p.scanner.Candidates(ctx, wave)
	if err != nil {
		return errors.Wrapf(ctx, err, "scan wave %d", wave)
	}
	for _, candidate := range candidates {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.dir, candidate)
		}
		changed, err := p.rewriter.Apply(ctx, path, p.current, next)
		if err != nil {
			log.Printf("bump: skip %s: %v", candidate, err)
			continue
		}
		if changed {
			log.Printf("bump: rewrote %s", candidate)
		}
	}
	return nil
}

// history returns every validly tagged version, invalid tags silently dropped.
func (p *project) history(ctx context.Context) (semver.History, error) {
	tags, err := p.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	history := make(semver.History, 0, len(tags))
	for _, tag := range tags {
		version, err := semver.ParseTag(ctx, tag)
		if err != nil {
			continue
		}
		history = append(history, version)
	}
	return history, nil
}
