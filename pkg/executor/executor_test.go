// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/bump/pkg/executor"
)

var _ = Describe("Executor", func() {
	var (
		ctx     context.Context
		e       executor.Executor
		tempDir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = executor.NewExecutor()

		var err error
		tempDir, err = os.MkdirTemp("", "executor-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if tempDir != "" {
			_ = os.RemoveAll(tempDir)
		}
	})

	Describe("Execute", func() {
		Context("with a succeeding command", func() {
			It("returns stdout without the trailing newline", func() {
				output, err := e.Execute(ctx, tempDir, "echo", "hello")
				Expect(err).NotTo(HaveOccurred())
				Expect(output).To(Equal("hello"))
			})

			It("keeps inner newlines", func() {
				output, err := e.Execute(ctx, tempDir, "sh", "-c", "printf 'a\\nb\\n'")
				Expect(err).NotTo(HaveOccurred())
				Expect(output).To(Equal("a\nb"))
			})

			It("returns empty output for a silent command", func() {
				output, err := e.Execute(ctx, tempDir, "true")
				Expect(err).NotTo(HaveOccurred())
				Expect(output).To(Equal(""))
			})

			It("runs in the given directory", func() {
				err := os.WriteFile(filepath.Join(tempDir, "marker.txt"), []byte("x"), 0600)
				Expect(err).NotTo(HaveOccurred())

				output, execErr := e.Execute(ctx, tempDir, "ls")
				Expect(execErr).NotTo(HaveOccurred())
				Expect(output).To(ContainSubstring("marker.txt"))
			})
		})

		Context("with a failing command", func() {
			It("returns the exit code and captured stderr", func() {
				_, err := e.Execute(ctx, tempDir, "sh", "-c", "echo oops >&2; exit 3")
				Expect(err).To(HaveOccurred())

				var execErr *executor.Error
				Expect(stderrors.As(err, &execErr)).To(BeTrue())
				Expect(execErr.ExitCode).To(Equal(3))
				Expect(execErr.Stderr).To(ContainSubstring("oops"))
				Expect(err.Error()).To(ContainSubstring("exit code 3"))
				Expect(err.Error()).To(ContainSubstring("oops"))
			})

			It("returns exit code -1 for a command that cannot start", func() {
				_, err := e.Execute(ctx, tempDir, "command-that-does-not-exist")
				Expect(err).To(HaveOccurred())

				var execErr *executor.Error
				Expect(stderrors.As(err, &execErr)).To(BeTrue())
				Expect(execErr.ExitCode).To(Equal(-1))
			})
		})

		Context("when context is cancelled", func() {
			It("returns error", func() {
				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()

				_, err := e.Execute(cancelCtx, tempDir, "sleep", "10")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Error", func() {
		It("renders command, exit code and stderr", func() {
			err := &executor.Error{
				Command:  "git push",
				ExitCode: 128,
				Stderr:   "fatal: no remote configured\n",
			}
			Expect(err.Error()).To(Equal(`command "git push" failed with exit code 128: fatal: no remote configured`))
		})

		It("omits the stderr suffix when empty", func() {
			err := &executor.Error{
				Command:  "git tag",
				ExitCode: 1,
			}
			Expect(err.Error()).To(Equal(`command "git tag" failed with exit code 1`))
		})
	})
})
