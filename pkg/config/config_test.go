// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/bump/pkg/config"
	"github.com/bborbe/bump/pkg/semver"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.Dir).To(Equal("."))
			Expect(cfg.BumpClass).To(Equal(semver.BumpClass("")))
			Expect(cfg.SetVersion).To(Equal(""))
			Expect(cfg.SkipCommit).To(BeFalse())
			Expect(cfg.CreateTag).To(BeFalse())
			Expect(cfg.Push).To(BeFalse())
			Expect(cfg.Stash).To(BeFalse())
			Expect(cfg.TagFormat).To(Equal("v{version}"))
			Expect(cfg.TagMessageFormat).To(Equal("Version {version} Release"))
			Expect(cfg.CommitMessageFormat).To(Equal("bump to version {version}"))
			Expect(cfg.VersionFile).To(Equal(""))
			Expect(cfg.Verbose).To(BeFalse())
		})
	})

	Describe("Validate", func() {
		It("succeeds for the defaults", func() {
			err := config.Defaults().Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("succeeds with a bump class", func() {
			cfg := config.Defaults()
			cfg.BumpClass = semver.BumpClassMinor
			err := cfg.Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("succeeds with an explicit version", func() {
			cfg := config.Defaults()
			cfg.SetVersion = "1.2.3"
			err := cfg.Validate(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails for empty dir", func() {
			cfg := config.Defaults()
			cfg.Dir = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("dir"))
		})

		It("fails for empty tagFormat", func() {
			cfg := config.Defaults()
			cfg.TagFormat = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagFormat"))
		})

		It("fails for empty tagMessageFormat", func() {
			cfg := config.Defaults()
			cfg.TagMessageFormat = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tagMessageFormat"))
		})

		It("fails for empty commitMessageFormat", func() {
			cfg := config.Defaults()
			cfg.CommitMessageFormat = ""
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("commitMessageFormat"))
		})

		It("fails for an unknown bump class", func() {
			cfg := config.Defaults()
			cfg.BumpClass = semver.BumpClass("release")
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bumpClass"))
		})

		It("fails when bump class and explicit version are combined", func() {
			cfg := config.Defaults()
			cfg.BumpClass = semver.BumpClassPatch
			cfg.SetVersion = "1.2.3"
			err := cfg.Validate(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bump class and explicit version are mutually exclusive"))
		})
	})

	Describe("format rendering", func() {
		var next *semver.Version

		BeforeEach(func() {
			var err error
			next, err = semver.Parse(ctx, "1.2.1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("renders the default formats", func() {
			cfg := config.Defaults()
			Expect(cfg.TagText(next)).To(Equal("v1.2.1"))
			Expect(cfg.TagMessage(next)).To(Equal("Version 1.2.1 Release"))
			Expect(cfg.CommitMessage(next)).To(Equal("bump to version 1.2.1"))
		})

		It("renders custom formats", func() {
			cfg := config.Defaults()
			cfg.TagFormat = "release-{version}"
			cfg.CommitMessageFormat = "cut {version} for {version}"
			Expect(cfg.TagText(next)).To(Equal("release-1.2.1"))
			Expect(cfg.CommitMessage(next)).To(Equal("cut 1.2.1 for 1.2.1"))
		})

		It("keeps formats without a placeholder", func() {
			cfg := config.Defaults()
			cfg.TagFormat = "latest"
			Expect(cfg.TagText(next)).To(Equal("latest"))
		})
	})

	Describe("Loader", func() {
		var tmpDir string
		var loader config.Loader

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())

			loader = config.NewLoader(tmpDir)
		})

		AfterEach(func() {
			err := os.RemoveAll(tmpDir)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Load", func() {
			It("returns defaults when config file does not exist", func() {
				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())

				expected := config.Defaults()
				expected.Dir = tmpDir
				Expect(cfg).To(Equal(expected))
			})

			It("loads full config from file", func() {
				configContent := `bumpClass: minor
skipCommit: true
tag: true
push: true
stash: true
tagFormat: release-{version}
tagMessageFormat: Release {version}
commitMessageFormat: version {version}
versionFile: VERSION
verbose: true
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".bump.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Dir).To(Equal(tmpDir))
				Expect(cfg.BumpClass).To(Equal(semver.BumpClassMinor))
				Expect(cfg.SkipCommit).To(BeTrue())
				Expect(cfg.CreateTag).To(BeTrue())
				Expect(cfg.Push).To(BeTrue())
				Expect(cfg.Stash).To(BeTrue())
				Expect(cfg.TagFormat).To(Equal("release-{version}"))
				Expect(cfg.TagMessageFormat).To(Equal("Release {version}"))
				Expect(cfg.CommitMessageFormat).To(Equal("version {version}"))
				Expect(cfg.VersionFile).To(Equal("VERSION"))
				Expect(cfg.Verbose).To(BeTrue())
			})

			It("merges partial config with defaults", func() {
				configContent := `tag: true
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".bump.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				cfg, err := loader.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.CreateTag).To(BeTrue())
				Expect(cfg.TagFormat).To(Equal("v{version}"))
				Expect(cfg.TagMessageFormat).To(Equal("Version {version} Release"))
				Expect(cfg.CommitMessageFormat).To(Equal("bump to version {version}"))
				Expect(cfg.SkipCommit).To(BeFalse())
			})

			It("returns error for invalid YAML", func() {
				configContent := `tagFormat: [unclosed
`
				err := os.WriteFile(
					filepath.Join(tmpDir, ".bump.yaml"),
					[]byte(configContent),
					0600,
				)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("parse config file"))
			})
		})
	})
})
