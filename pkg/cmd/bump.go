// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/config"
	"github.com/bborbe/bump/pkg/project"
	"github.com/bborbe/bump/pkg/semver"
)

// BumpCommand resolves the current version, applies the requested bump
// and runs the follow up git operations.
//
//counterfeiter:generate -o ../../mocks/bump-command.go --fake-name BumpCommand . BumpCommand
type BumpCommand interface {
	Run(ctx context.Context) error
}

type bumpCommand struct {
	cfg     config.Config
	project project.Project
}

// NewBumpCommand creates a BumpCommand.
func NewBumpCommand(
	cfg config.Config,
	proj project.Project,
) BumpCommand {
	return &bumpCommand{
		cfg:     cfg,
		project: proj,
	}
}

func (b *bumpCommand) Run(ctx context.Context) error {
	if b.cfg.BumpClass == "" && b.cfg.SetVersion == "" {
		return b.reportCurrent(ctx)
	}

	next, stashed, err := b.bump(ctx)
	if err != nil {
		return err
	}

	if !b.cfg.SkipCommit {
		if err := b.commit(ctx, next); err != nil {
			return err
		}
	}

	if stashed {
		log.Printf("bump: restoring stashed changes")
		if err := b.project.Unstash(ctx); err != nil {
			return errors.Wrap(ctx, err, "unstash changes")
		}
	}

	if b.cfg.CreateTag {
		if err := b.project.Tag(ctx, b.cfg.TagMessage(next), b.cfg.TagText(next)); err != nil {
			return errors.Wrap(ctx, err, "create tag")
		}
		log.Printf("bump: tagged %s", b.cfg.TagText(next))
	}

	if b.cfg.Push {
		if err := b.project.Push(ctx); err != nil {
			return errors.Wrap(ctx, err, "push to remote")
		}
		log.Printf("bump: pushed to remote")
	}

	return nil
}

// reportCurrent handles invocations without a bump class or explicit
// version and only prints the resolved version.
func (b *bumpCommand) reportCurrent(ctx context.Context) error {
	if b.cfg.CreateTag {
		return errors.Errorf(ctx, "couldn't find a version to bump, nothing to tag")
	}
	if b.cfg.Push {
		return errors.Errorf(ctx, "couldn't find a version to bump, nothing to push")
	}
	if current := b.project.Current(); current != nil {
		fmt.Printf("Current version: %s\n", current)
		return nil
	}
	fmt.Println("no version tags found")
	return nil
}

// bump computes the next version and writes it into the project files.
// On failure after a stash the stash stays in place.
func (b *bumpCommand) bump(ctx context.Context) (*semver.Version, bool, error) {
	if b.cfg.BumpClass != "" && b.project.Current() == nil {
		return nil, false, errors.Wrap(ctx, project.ErrNoTagsYet, "no git tags found, run with the -s and -T options")
	}

	stashed, err := b.project.EnsureClean(ctx, b.cfg.Stash)
	if err != nil {
		if stderrors.Is(err, project.ErrDirtyWorkingTree) {
			return nil, false, b.dirtyTreeError(ctx)
		}
		return nil, false, errors.Wrap(ctx, err, "ensure clean working tree")
	}

	next, err := b.resolveNext(ctx)
	if err != nil {
		return nil, stashed, err
	}

	if err := b.project.SetVersions(ctx, next); err != nil {
		if stderrors.Is(err, project.ErrRewriteNotFound) {
			return nil, stashed, b.rewriteNotFoundError(ctx)
		}
		return nil, stashed, errors.Wrapf(ctx, err, "set version %s", next)
	}

	if b.cfg.BumpClass != "" {
		log.Printf("bump: bumped from version %s to %s", b.project.Current(), next)
	} else {
		log.Printf("bump: set to version %s", next)
	}

	return next, stashed, nil
}

func (b *bumpCommand) resolveNext(ctx context.Context) (*semver.Version, error) {
	if b.cfg.BumpClass != "" {
		next, err := b.project.Bump(ctx, b.cfg.BumpClass)
		if err != nil {
			return nil, errors.Wrapf(ctx, err, "bump %s", b.cfg.BumpClass)
		}
		return next, nil
	}
	next, err := semver.Parse(ctx, b.cfg.SetVersion)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "invalid version '%s', please use the x.y.z format", b.cfg.SetVersion)
	}
	return next, nil
}

// commit stages the rewritten files and commits them.
func (b *bumpCommand) commit(ctx context.Context, next *semver.Version) error {
	files, err := b.project.DirtyFiles(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "list changed files")
	}
	if err := b.project.Add(ctx, files); err != nil {
		return errors.Wrap(ctx, err, "stage changed files")
	}
	message := b.cfg.CommitMessage(next)
	if err := b.project.Commit(ctx, message); err != nil {
		return errors.Wrap(ctx, err, "commit version bump")
	}
	log.Printf("bump: committed '%s'", message)
	return nil
}

func (b *bumpCommand) dirtyTreeError(ctx context.Context) error {
	files, err := b.project.DirtyFiles(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "list dirty files")
	}
	return errors.Wrapf(
		ctx,
		project.ErrDirtyWorkingTree,
		"can't bump the version with uncommitted changes, commit or stash the following files or run with the -a option: %s",
		strings.Join(files, ", "),
	)
}

func (b *bumpCommand) rewriteNotFoundError(ctx context.Context) error {
	if current := b.project.Current(); current != nil {
		return errors.Wrapf(ctx, project.ErrRewriteNotFound, "couldn't find version '%s' in any files", current)
	}
	return errors.Wrap(ctx, project.ErrRewriteNotFound, "couldn't find a version line in any files")
}
