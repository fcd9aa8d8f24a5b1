// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/bump/mocks"
	"github.com/bborbe/bump/pkg/project"
	"github.com/bborbe/bump/pkg/semver"
)

var _ = Describe("Project", func() {
	var (
		ctx          context.Context
		tempDir      string
		mockGit      *mocks.Git
		mockScanner  *mocks.Scanner
		mockRewriter *mocks.Rewriter
	)

	newProject := func() project.Project {
		p, err := project.New(ctx, tempDir, mockGit, mockScanner, mockRewriter)
		Expect(err).To(BeNil())
		return p
	}

	version := func(value string) *semver.Version {
		parsed, err := semver.Parse(ctx, value)
		Expect(err).To(BeNil())
		return parsed
	}

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tempDir, err = os.MkdirTemp("", "project")
		Expect(err).To(BeNil())
		mockGit = &mocks.Git{}
		mockScanner = &mocks.Scanner{}
		mockRewriter = &mocks.Rewriter{}
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("New", func() {
		It("resolves the current version from the most recent tag", func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)

			p := newProject()
			Expect(p.Current()).NotTo(BeNil())
			Expect(p.Current().String()).To(Equal("1.2.0"))
			Expect(p.State()).To(Equal(project.StateResolved))
			Expect(p.Bumped()).To(BeFalse())
		})

		It("resolves no version without tags", func() {
			mockGit.CurrentTagReturns("", nil)

			p := newProject()
			Expect(p.Current()).To(BeNil())
		})

		It("treats an unparsable tag as no version", func() {
			mockGit.CurrentTagReturns("release-2", nil)

			p := newProject()
			Expect(p.Current()).To(BeNil())
		})

		It("rejects a missing directory", func() {
			_, err := project.New(ctx, filepath.Join(tempDir, "missing"), mockGit, mockScanner, mockRewriter)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("is not a directory"))
		})

		It("rejects a file as directory", func() {
			path := filepath.Join(tempDir, "file.txt")
			Expect(os.WriteFile(path, []byte("x"), 0600)).To(BeNil())

			_, err := project.New(ctx, path, mockGit, mockScanner, mockRewriter)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("is not a directory"))
		})
	})

	Describe("Bump", func() {
		It("computes the successor version", func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)
			mockGit.ListTagsReturns([]string{"v1.0.0", "v1.2.0"}, nil)

			p := newProject()
			next, err := p.Bump(ctx, semver.BumpClassPatch)
			Expect(err).To(BeNil())
			Expect(next.String()).To(Equal("1.2.1"))
			Expect(p.State()).To(Equal(project.StateBumpRequested))
		})

		It("fails without a current version", func() {
			mockGit.CurrentTagReturns("", nil)

			p := newProject()
			_, err := p.Bump(ctx, semver.BumpClassMinor)
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrNoTagsYet)).To(BeTrue())
		})

		It("rejects an unknown bump class", func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)

			p := newProject()
			_, err := p.Bump(ctx, semver.BumpClass("release"))
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("validate bump class"))
		})

		It("rejects a version already in the tag history", func() {
			mockGit.CurrentTagReturns("v1.0.0", nil)
			mockGit.ListTagsReturns([]string{"v1.0.0", "v1.1.0"}, nil)

			p := newProject()
			_, err := p.Bump(ctx, semver.BumpClassMinor)
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, semver.ErrVersionExists)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("version '1.1.0' already present"))
		})

		It("drops unparsable tags from the history", func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)
			mockGit.ListTagsReturns([]string{"garbage", "v1.2.0"}, nil)

			p := newProject()
			next, err := p.Bump(ctx, semver.BumpClassPatch)
			Expect(err).To(BeNil())
			Expect(next.String()).To(Equal("1.2.1"))
		})

		It("wraps tag listing failures", func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)
			mockGit.ListTagsReturns(nil, stderrors.New("banana"))

			p := newProject()
			_, err := p.Bump(ctx, semver.BumpClassPatch)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("list tags"))
		})
	})

	Describe("EnsureClean", func() {
		It("passes a clean tree through", func() {
			mockGit.IsDirtyReturns(false, nil)

			p := newProject()
			stashed, err := p.EnsureClean(ctx, false)
			Expect(err).To(BeNil())
			Expect(stashed).To(BeFalse())
			Expect(mockGit.StashCallCount()).To(Equal(0))
		})

		It("fails on a dirty tree without stashing", func() {
			mockGit.IsDirtyReturns(true, nil)

			p := newProject()
			_, err := p.EnsureClean(ctx, false)
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrDirtyWorkingTree)).To(BeTrue())
			Expect(mockGit.StashCallCount()).To(Equal(0))
		})

		It("stashes a dirty tree when asked to", func() {
			mockGit.IsDirtyReturns(true, nil)

			p := newProject()
			stashed, err := p.EnsureClean(ctx, true)
			Expect(err).To(BeNil())
			Expect(stashed).To(BeTrue())
			Expect(mockGit.StashCallCount()).To(Equal(1))
		})

		It("wraps stash failures", func() {
			mockGit.IsDirtyReturns(true, nil)
			mockGit.StashReturns(stderrors.New("banana"))

			p := newProject()
			_, err := p.EnsureClean(ctx, true)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("stash changes"))
		})

		It("wraps status failures", func() {
			mockGit.IsDirtyReturns(false, stderrors.New("banana"))

			p := newProject()
			_, err := p.EnsureClean(ctx, false)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("check working tree"))
		})
	})

	Describe("SetVersions", func() {
		BeforeEach(func() {
			mockGit.CurrentTagReturns("v1.2.0", nil)
		})

		It("stops after the first wave dirties the tree", func() {
			mockScanner.CandidatesReturnsOnCall(0, []string{"setup.py"}, nil)
			mockRewriter.ApplyReturns(true, nil)
			mockGit.IsDirtyReturnsOnCall(0, true, nil)

			p := newProject()
			Expect(p.SetVersions(ctx, version("1.2.1"))).To(BeNil())
			Expect(p.Bumped()).To(BeTrue())
			Expect(p.State()).To(Equal(project.StateBumped))
			Expect(mockScanner.CandidatesCallCount()).To(Equal(1))
		})

		It("passes the current and next version to the rewriter", func() {
			mockScanner.CandidatesReturnsOnCall(0, []string{"setup.py"}, nil)
			mockRewriter.ApplyReturns(true, nil)
			mockGit.IsDirtyReturnsOnCall(0, true, nil)

			p := newProject()
			Expect(p.SetVersions(ctx, version("1.2.1"))).To(BeNil())

			_, path, current, next := mockRewriter.ApplyArgsForCall(0)
			Expect(path).To(Equal(filepath.Join(tempDir, "setup.py")))
			Expect(current.String()).To(Equal("1.2.0"))
			Expect(next.String()).To(Equal("1.2.1"))
		})

		It("keeps absolute candidate paths as they are", func() {
			mockScanner.CandidatesReturnsOnCall(0, []string{"/elsewhere/version.txt"}, nil)
			mockRewriter.ApplyReturns(true, nil)
			mockGit.IsDirtyReturnsOnCall(0, true, nil)

			p := newProject()
			Expect(p.SetVersions(ctx, version("1.2.1"))).To(BeNil())

			_, path, _, _ := mockRewriter.ApplyArgsForCall(0)
			Expect(path).To(Equal("/elsewhere/version.txt"))
		})

		It("falls through to the second wave", func() {
			mockScanner.CandidatesReturnsOnCall(0, nil, nil)
			mockScanner.CandidatesReturnsOnCall(1, []string{"main.py"}, nil)
			mockRewriter.ApplyReturns(true, nil)
			mockGit.IsDirtyReturnsOnCall(0, false, nil)
			mockGit.IsDirtyReturnsOnCall(1, true, nil)

			p := newProject()
			Expect(p.SetVersions(ctx, version("1.2.1"))).To(BeNil())
			Expect(p.State()).To(Equal(project.StateBumped))
			Expect(mockScanner.CandidatesCallCount()).To(Equal(2))
		})

		It("fails when no wave changes anything", func() {
			mockScanner.CandidatesReturns([]string{"setup.py"}, nil)
			mockRewriter.ApplyReturns(false, nil)
			mockGit.IsDirtyReturns(false, nil)

			p := newProject()
			err := p.SetVersions(ctx, version("1.2.1"))
			Expect(err).NotTo(BeNil())
			Expect(stderrors.Is(err, project.ErrRewriteNotFound)).To(BeTrue())
			Expect(p.Bumped()).To(BeFalse())
			Expect(p.State()).To(Equal(project.StateNoChange))
		})

		It("skips a failing file and keeps rewriting", func() {
			mockScanner.CandidatesReturnsOnCall(0, []string{"broken.py", "setup.py"}, nil)
			mockRewriter.ApplyReturnsOnCall(0, false, stderrors.New("banana"))
			mockRewriter.ApplyReturnsOnCall(1, true, nil)
			mockGit.IsDirtyReturnsOnCall(0, true, nil)

			p := newProject()
			Expect(p.SetVersions(ctx, version("1.2.1"))).To(BeNil())
			Expect(mockRewriter.ApplyCallCount()).To(Equal(2))
		})

		It("wraps scan failures", func() {
			mockScanner.CandidatesReturns(nil, stderrors.New("banana"))

			p := newProject()
			err := p.SetVersions(ctx, version("1.2.1"))
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("scan wave 1"))
		})

		It("wraps status failures", func() {
			mockScanner.CandidatesReturns([]string{"setup.py"}, nil)
			mockRewriter.ApplyReturns(true, nil)
			mockGit.IsDirtyReturns(false, stderrors.New("banana"))

			p := newProject()
			err := p.SetVersions(ctx, version("1.2.1"))
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("check working tree"))
		})
	})
})
