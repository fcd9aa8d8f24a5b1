// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/executor"
)

// Git runs version control operations in a project directory.
//
//counterfeiter:generate -o ../../mocks/git.go --fake-name Git . Git
type Git interface {
	ListTags(ctx context.Context) ([]string, error)
	CurrentTag(ctx context.Context) (string, error)
	TrackedFiles(ctx context.Context) ([]string, error)
	IsDirty(ctx context.Context) (bool, error)
	DirtyFiles(ctx context.Context) ([]string, error)
	Stash(ctx context.Context) error
	Unstash(ctx context.Context) error
	Add(ctx context.Context, paths []string) error
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, message string, tagText string) error
	Push(ctx context.Context) error
}

// shellGit implements Git by shelling out to the git binary.
type shellGit struct {
	dir      string
	executor executor.Executor
}

// New creates a Git bound to the given working directory.
func New(dir string, executor executor.Executor) Git {
	return &shellGit{
		dir:      dir,
		executor: executor,
	}
}

// ListTags returns all tags of the repository.
func (g *shellGit) ListTags(ctx context.Context) ([]string, error) {
	output, err := g.executor.Execute(ctx, g.dir, "git", "tag")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "git tag")
	}
	return splitLines(output), nil
}

// CurrentTag returns the most recent reachable tag, or empty when the
// repository has none. A failing describe counts as no tag, not as an error.
func (g *shellGit) CurrentTag(ctx context.Context) (string, error) {
	output, err := g.executor.Execute(ctx, g.dir, "git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(output), nil
}

// TrackedFiles returns every tracked path, relative to the project directory.
func (g *shellGit) TrackedFiles(ctx context.Context) ([]string, error) {
	output, err := g.executor.Execute(ctx, g.dir, "git", "ls-files")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "git ls-files")
	}
	return splitLines(output), nil
}

// IsDirty reports whether the working tree has uncommitted changes.
func (g *shellGit) IsDirty(ctx context.Context) (bool, error) {
	output, err := g.executor.Execute(ctx, g.dir, "git", "status", "--porcelain")
	if err != nil {
		return false, errors.Wrap(ctx, err, "git status")
	}
	return len(output) > 0, nil
}

// DirtyFiles returns the paths with uncommitted changes.
func (g *shellGit) DirtyFiles(ctx context.Context) ([]string, error) {
	output, err := g.executor.Execute(ctx, g.dir, "git", "status", "--porcelain")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "git status")
	}
	var files []string
	for _, line := range splitLines(output) {
		// porcelain lines are `XY path`, renames are `XY old -> new`
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+4:]
		}
		files = append(files, path)
	}
	return files, nil
}

// Stash saves the uncommitted changes away.
func (g *shellGit) Stash(ctx context.Context) error {
	if _, err := g.executor.Execute(ctx, g.dir, "git", "stash"); err != nil {
		return errors.Wrap(ctx, err, "git stash")
	}
	return nil
}

// Unstash restores the most recently stashed changes.
func (g *shellGit) Unstash(ctx context.Context) error {
	if _, err := g.executor.Execute(ctx, g.dir, "git", "stash", "pop"); err != nil {
		return errors.Wrap(ctx, err, "git stash pop")
	}
	return nil
}

// Add stages the given paths.
func (g *shellGit) Add(ctx context.Context, paths []string) error {
	args := append([]string{"add", "--"}, paths...)
	if _, err := g.executor.Execute(ctx, g.dir, "git", args...); err != nil {
		return errors.Wrap(ctx, err, "git add")
	}
	return nil
}

// Commit commits the staged changes with the given message.
func (g *shellGit) Commit(ctx context.Context, message string) error {
	if _, err := g.executor.Execute(ctx, g.dir, "git", "commit", "-m", message); err != nil {
		return errors.Wrap(ctx, err, "git commit")
	}
	return nil
}

// Tag creates an annotated tag with the given message.
func (g *shellGit) Tag(ctx context.Context, message string, tagText string) error {
	if _, err := g.executor.Execute(ctx, g.dir, "git", "tag", "-m", message, tagText); err != nil {
		return errors.Wrap(ctx, err, "git tag")
	}
	return nil
}

// Push pushes the current branch and all tags to the remote.
func (g *shellGit) Push(ctx context.Context) error {
	if _, err := g.executor.Execute(ctx, g.dir, "git", "push"); err != nil {
		return errors.Wrap(ctx, err, "git push")
	}
	if _, err := g.executor.Execute(ctx, g.dir, "git", "push", "--tags"); err != nil {
		return errors.Wrap(ctx, err, "git push tags")
	}
	return nil
}

// splitLines splits command output into lines, dropping empty ones.
func splitLines(output string) []string {
	if output == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
