// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bborbe/errors"

	"github.com/bborbe/bump/pkg/cmd"
	"github.com/bborbe/bump/pkg/config"
	"github.com/bborbe/bump/pkg/executor"
	"github.com/bborbe/bump/pkg/git"
	"github.com/bborbe/bump/pkg/project"
	"github.com/bborbe/bump/pkg/rewrite"
	"github.com/bborbe/bump/pkg/scanner"
	"github.com/bborbe/bump/pkg/semver"
	"github.com/bborbe/bump/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	flags, err := parseFlags(ctx, os.Args[1:])
	if err != nil {
		return err
	}

	if flags.showVersion {
		fmt.Printf("bump %s\n", version.NewGetter(version.Version).Get())
		return nil
	}

	cfg, err := config.NewLoader(flags.dir).Load(ctx)
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, &cfg, flags); err != nil {
		return err
	}
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}
	if err := cfg.Validate(ctx); err != nil {
		return errors.Wrap(ctx, err, "validate config")
	}

	exec := executor.NewExecutor()
	gitAdapter := git.New(cfg.Dir, exec)
	fileScanner := scanner.NewScanner(gitAdapter, cfg.VersionFile)
	rewriter := rewrite.NewRewriter()
	proj, err := project.New(ctx, cfg.Dir, gitAdapter, fileScanner, rewriter)
	if err != nil {
		return err
	}

	return cmd.NewBumpCommand(cfg, proj).Run(ctx)
}

// cliFlags holds the parsed command line. The set map records which flag
// names were given so only those override the config file.
type cliFlags struct {
	dir             string
	bumpType        string
	setVersion      string
	skipCommit      bool
	createTag       bool
	push            bool
	stash           bool
	tagFormat       string
	tagMsgFormat    string
	commitMsgFormat string
	versionFile     string
	verbose         bool
	showVersion     bool
	set             map[string]bool
}

func (f *cliFlags) isSet(names ...string) bool {
	for _, name := range names {
		if f.set[name] {
			return true
		}
	}
	return false
}

func parseFlags(ctx context.Context, args []string) (*cliFlags, error) {
	flags := &cliFlags{
		set: map[string]bool{},
	}

	fs := flag.NewFlagSet("bump", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }
	fs.StringVar(&flags.bumpType, "t", "", "bump class: m|major, n|minor or p|patch")
	fs.StringVar(&flags.bumpType, "type", "", "bump class: m|major, n|minor or p|patch")
	fs.StringVar(&flags.setVersion, "s", "", "set an explicit version instead of bumping")
	fs.StringVar(&flags.setVersion, "set", "", "set an explicit version instead of bumping")
	fs.BoolVar(&flags.skipCommit, "S", false, "don't commit the rewritten files")
	fs.BoolVar(&flags.skipCommit, "skip-commit", false, "don't commit the rewritten files")
	fs.BoolVar(&flags.createTag, "T", false, "tag the bump commit")
	fs.BoolVar(&flags.createTag, "tag", false, "tag the bump commit")
	fs.BoolVar(&flags.push, "p", false, "push the commit and tags to the remote")
	fs.BoolVar(&flags.push, "push", false, "push the commit and tags to the remote")
	fs.BoolVar(&flags.stash, "a", false, "stash uncommitted changes before bumping")
	fs.BoolVar(&flags.stash, "stash", false, "stash uncommitted changes before bumping")
	fs.StringVar(&flags.tagFormat, "f", "", "tag format, {version} is replaced")
	fs.StringVar(&flags.tagFormat, "tag-format", "", "tag format, {version} is replaced")
	fs.StringVar(&flags.tagMsgFormat, "F", "", "tag message format, {version} is replaced")
	fs.StringVar(&flags.tagMsgFormat, "tag-msg-format", "", "tag message format, {version} is replaced")
	fs.StringVar(&flags.commitMsgFormat, "c", "", "commit message format, {version} is replaced")
	fs.StringVar(&flags.commitMsgFormat, "commit-msg-format", "", "commit message format, {version} is replaced")
	fs.StringVar(&flags.versionFile, "i", "", "only rewrite this file instead of scanning")
	fs.StringVar(&flags.versionFile, "file", "", "only rewrite this file instead of scanning")
	fs.BoolVar(&flags.verbose, "V", false, "verbose output")
	fs.BoolVar(&flags.verbose, "verbose", false, "verbose output")
	fs.BoolVar(&flags.showVersion, "v", false, "print the bump version and exit")
	fs.BoolVar(&flags.showVersion, "version", false, "print the bump version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	if fs.NArg() > 1 {
		return nil, errors.Errorf(ctx, "too many arguments: %v", fs.Args()[1:])
	}
	flags.dir = "."
	if fs.NArg() > 0 {
		flags.dir = fs.Arg(0)
	}

	return flags, nil
}

// applyFlags overrides the loaded config with the flags that were given.
func applyFlags(ctx context.Context, cfg *config.Config, flags *cliFlags) error {
	if flags.isSet("t", "type") {
		bumpClass, err := semver.ParseBumpClass(ctx, flags.bumpType)
		if err != nil {
			return err
		}
		cfg.BumpClass = bumpClass
	}
	if flags.isSet("s", "set") {
		cfg.SetVersion = flags.setVersion
	}
	if flags.isSet("S", "skip-commit") {
		cfg.SkipCommit = flags.skipCommit
	}
	if flags.isSet("T", "tag") {
		cfg.CreateTag = flags.createTag
	}
	if flags.isSet("p", "push") {
		cfg.Push = flags.push
	}
	if flags.isSet("a", "stash") {
		cfg.Stash = flags.stash
	}
	if flags.isSet("f", "tag-format") {
		cfg.TagFormat = flags.tagFormat
	}
	if flags.isSet("F", "tag-msg-format") {
		cfg.TagMessageFormat = flags.tagMsgFormat
	}
	if flags.isSet("c", "commit-msg-format") {
		cfg.CommitMessageFormat = flags.commitMsgFormat
	}
	if flags.isSet("i", "file") {
		cfg.VersionFile = flags.versionFile
	}
	if flags.isSet("V", "verbose") {
		cfg.Verbose = flags.verbose
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	msg := `Usage:
  bump [options] [<project-dir>]

Bumps the semantic version of a git project: resolves the current version
from the latest tag, writes the next version into the project files and
commits, tags and pushes the change on request.

Examples:
  bump -t patch
  bump -t minor -T -p ~/src/project
  bump -s 2.0.0 -T

Options:
`
	fmt.Fprint(os.Stderr, msg)
	fs.PrintDefaults()
}
