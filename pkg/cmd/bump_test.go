// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/bump/mocks"
	"github.com/bborbe/bump/pkg/cmd"
	"github.com/bborbe/bump/pkg/config"
	"github.com/bborbe/bump/pkg/project"
	"github.com/bborbe/bump/pkg/semver"
)

var _ = Describe("BumpCommand", func() {
	var (
		ctx         context.Context
		cfg         config.Config
		mockProject *mocks.Project
	)

	version := func(value string) *semver.Version {
		parsed, err := semver.Parse(ctx, value)
		Expect(err).To(BeNil())
		return parsed
	}

	run := func() error {
		return cmd.NewBumpCommand(cfg, mockProject).Run(ctx)
	}

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Defaults()
		mockProject = &mocks.Project{}
	})

	Context("without a bump class or explicit version", func() {
		It("only reports the current version", func() {
			mockProject.CurrentReturns(version("1.2.0"))

			Expect(run()).To(BeNil())
			Expect(mockProject.BumpCallCount()).To(Equal(0))
			Expect(mockProject.CommitCallCount()).To(Equal(0))
		})

		It("reports a project without tags", func() {
			mockProject.CurrentReturns(nil)

			Expect(run()).To(BeNil())
		})

		It("refuses to tag", func() {
			cfg.CreateTag = true

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("couldn't find a version to bump, nothing to tag"))
		})

		It("refuses to push", func() {
			cfg.Push = true

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("couldn't find a version to bump, nothing to push"))
		})
	})

	Context("with a bump class", func() {
		BeforeEach(func() {
			cfg.BumpClass = semver.BumpClassPatch
			mockProject.CurrentReturns(version("1.2.0"))
			mockProject.BumpReturns(version("1.2.1"), nil)
			mockProject.EnsureCleanReturns(false, nil)
			mockProject.SetVersionsReturns(nil)
			mockProject.DirtyFilesReturns([]string{"setup.py"}, nil)
		})

		It("bumps, stages and commits", func() {
			Expect(run()).To(BeNil())

			_, class := mockProject.BumpArgsForCall(0)
			Expect(class).To(Equal(semver.BumpClassPatch))

			_, next := mockProject.SetVersionsArgsForCall(0)
			Expect(next.String()).To(Equal("1.2.1"))

			_, files := mockProject.AddArgsForCall(0)
			Expect(files).To(Equal([]string{"setup.py"}))

			_, message := mockProject.CommitArgsForCall(0)
			Expect(message).To(Equal("bump to version 1.2.1"))

			Expect(mockProject.TagCallCount()).To(Equal(0))
			Expect(mockProject.PushCallCount()).To(Equal(0))
		})

		It("skips the commit when asked to", func() {
			cfg.SkipCommit = true

			Expect(run()).To(BeNil())
			Expect(mockProject.AddCallCount()).To(Equal(0))
			Expect(mockProject.CommitCallCount()).To(Equal(0))
		})

		It("tags the new version", func() {
			cfg.CreateTag = true

			Expect(run()).To(BeNil())

			_, message, tag := mockProject.TagArgsForCall(0)
			Expect(message).To(Equal("Version 1.2.1 Release"))
			Expect(tag).To(Equal("v1.2.1"))
		})

		It("pushes to the remote", func() {
			cfg.Push = true

			Expect(run()).To(BeNil())
			Expect(mockProject.PushCallCount()).To(Equal(1))
		})

		It("fails without any tags", func() {
			mockProject.CurrentReturns(nil)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrNoTagsYet)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("no git tags found, run with the -s and -T options"))
			Expect(mockProject.EnsureCleanCallCount()).To(Equal(0))
		})

		It("lists the uncommitted files of a dirty tree", func() {
			mockProject.EnsureCleanReturns(false, project.ErrDirtyWorkingTree)
			mockProject.DirtyFilesReturns([]string{"setup.py", "main.py"}, nil)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrDirtyWorkingTree)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("commit or stash the following files or run with the -a option: setup.py, main.py"))
		})

		It("wraps other working tree failures", func() {
			mockProject.EnsureCleanReturns(false, stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("ensure clean working tree"))
		})

		It("propagates bump failures", func() {
			mockProject.BumpReturns(nil, semver.ErrVersionExists)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, semver.ErrVersionExists)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("bump patch"))
		})

		It("explains a rewrite that found nothing", func() {
			mockProject.SetVersionsReturns(project.ErrRewriteNotFound)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrRewriteNotFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("couldn't find version '1.2.0' in any files"))
			Expect(mockProject.CommitCallCount()).To(Equal(0))
		})

		It("restores the stash after the commit", func() {
			cfg.Stash = true
			mockProject.EnsureCleanReturns(true, nil)

			Expect(run()).To(BeNil())
			Expect(mockProject.CommitCallCount()).To(Equal(1))
			Expect(mockProject.UnstashCallCount()).To(Equal(1))
		})

		It("restores the stash even without a commit", func() {
			cfg.Stash = true
			cfg.SkipCommit = true
			mockProject.EnsureCleanReturns(true, nil)

			Expect(run()).To(BeNil())
			Expect(mockProject.CommitCallCount()).To(Equal(0))
			Expect(mockProject.UnstashCallCount()).To(Equal(1))
		})

		It("keeps the stash when the rewrite fails", func() {
			cfg.Stash = true
			mockProject.EnsureCleanReturns(true, nil)
			mockProject.SetVersionsReturns(project.ErrRewriteNotFound)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(mockProject.UnstashCallCount()).To(Equal(0))
		})

		It("wraps unstash failures", func() {
			cfg.Stash = true
			mockProject.EnsureCleanReturns(true, nil)
			mockProject.UnstashReturns(stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("unstash changes"))
		})

		It("wraps staging failures", func() {
			mockProject.AddReturns(stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("stage changed files"))
		})

		It("wraps commit failures", func() {
			mockProject.CommitReturns(stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("commit version bump"))
		})

		It("wraps tag failures", func() {
			cfg.CreateTag = true
			mockProject.TagReturns(stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("create tag"))
		})

		It("wraps push failures", func() {
			cfg.Push = true
			mockProject.PushReturns(stderrors.New("banana"))

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("push to remote"))
		})
	})

	Context("with an explicit version", func() {
		BeforeEach(func() {
			cfg.SetVersion = "2.0.0"
			mockProject.CurrentReturns(nil)
			mockProject.EnsureCleanReturns(false, nil)
			mockProject.SetVersionsReturns(nil)
			mockProject.DirtyFilesReturns([]string{"setup.py"}, nil)
		})

		It("sets the version without a current one", func() {
			Expect(run()).To(BeNil())

			_, next := mockProject.SetVersionsArgsForCall(0)
			Expect(next.String()).To(Equal("2.0.0"))
			Expect(mockProject.BumpCallCount()).To(Equal(0))
		})

		It("rejects a malformed version", func() {
			cfg.SetVersion = "banana"

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, semver.ErrInvalidVersion)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("invalid version 'banana', please use the x.y.z format"))
		})

		It("explains a rewrite that found no version line", func() {
			mockProject.SetVersionsReturns(project.ErrRewriteNotFound)

			err := run()
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("couldn't find a version line in any files"))
		})
	})
})
