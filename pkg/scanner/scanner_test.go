// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/bump/mocks"
	"github.com/bborbe/bump/pkg/scanner"
)

var _ = Describe("Scanner", func() {
	var (
		ctx     context.Context
		mockGit *mocks.Git
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockGit = &mocks.Git{}
	})

	Context("with the default patterns", func() {
		var s scanner.Scanner

		BeforeEach(func() {
			s = scanner.NewScanner(mockGit, "")
		})

		It("matches version declaring files in the first wave", func() {
			mockGit.TrackedFilesReturns([]string{
				"app.spec",
				"setup.cfg",
				"setup.py",
				"pkg/__init__.py",
				"pom.xml",
				"conf/app.json",
				"README.md",
				"src/main.py",
			}, nil)

			candidates, err := s.Candidates(ctx, scanner.WaveVersionFiles)
			Expect(err).To(BeNil())
			Expect(candidates).To(Equal([]string{
				"app.spec",
				"setup.cfg",
				"setup.py",
				"pkg/__init__.py",
				"pom.xml",
				"conf/app.json",
			}))
		})

		It("matches nested init files but not a top level one", func() {
			mockGit.TrackedFilesReturns([]string{
				"__init__.py",
				"pkg/__init__.py",
				"pkg/sub/__init__.py",
			}, nil)

			candidates, err := s.Candidates(ctx, scanner.WaveVersionFiles)
			Expect(err).To(BeNil())
			Expect(candidates).To(Equal([]string{
				"pkg/__init__.py",
				"pkg/sub/__init__.py",
			}))
		})

		It("matches source files in the second wave", func() {
			mockGit.TrackedFilesReturns([]string{
				"src/main.py",
				"web/index.php",
				"setup.cfg",
				"README.md",
			}, nil)

			candidates, err := s.Candidates(ctx, scanner.WaveSourceFiles)
			Expect(err).To(BeNil())
			Expect(candidates).To(Equal([]string{
				"src/main.py",
				"web/index.php",
			}))
		})

		It("returns no candidates when nothing matches", func() {
			mockGit.TrackedFilesReturns([]string{"README.md", "Makefile"}, nil)

			candidates, err := s.Candidates(ctx, scanner.WaveVersionFiles)
			Expect(err).To(BeNil())
			Expect(candidates).To(BeEmpty())
		})

		It("propagates tracked file errors", func() {
			mockGit.TrackedFilesReturns(nil, stderrors.New("banana"))

			_, err := s.Candidates(ctx, scanner.WaveVersionFiles)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("list tracked files"))
		})
	})

	Context("with an explicit version file", func() {
		var s scanner.Scanner

		BeforeEach(func() {
			s = scanner.NewScanner(mockGit, "version.txt")
		})

		It("returns exactly that file for every wave", func() {
			for _, wave := range scanner.AllWaves {
				candidates, err := s.Candidates(ctx, wave)
				Expect(err).To(BeNil())
				Expect(candidates).To(Equal([]string{"version.txt"}))
			}
		})

		It("never reads the tracked files", func() {
			_, err := s.Candidates(ctx, scanner.WaveVersionFiles)
			Expect(err).To(BeNil())
			Expect(mockGit.TrackedFilesCallCount()).To(Equal(0))
		})
	})
})
