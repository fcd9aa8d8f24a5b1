// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
)

// Error describes a failed command with its exit status and captured stderr.
type Error struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	message := fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		message += ": " + stderr
	}
	return message
}

// Executor runs an external command in a working directory and captures its output.
//
//counterfeiter:generate -o ../../mocks/executor.go --fake-name FakeExecutor . Executor
type Executor interface {
	Execute(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// commandExecutor implements Executor using os/exec.
type commandExecutor struct{}

// NewExecutor creates an Executor that runs commands directly.
func NewExecutor() Executor {
	return &commandExecutor{}
}

// Execute runs the command in dir and returns its stdout with trailing
// newlines trimmed. Failures carry the exit code and captured stderr.
func (e *commandExecutor) Execute(
	ctx context.Context,
	dir string,
	name string,
	args ...string,
) (string, error) {
	// #nosec G204 -- name and args are built by the callers, not taken from input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &Error{
			Command:  strings.Join(append([]string{name}, args...), " "),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
