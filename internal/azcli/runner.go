package azcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures stdout/stderr emitted by a command run along with its exit status.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Succeeded reports whether the process exited with status zero.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// PrimaryOutput returns stderr if present, otherwise stdout.
func PrimaryOutput(res Result) string {
	if res.Stderr != "" {
		return res.Stderr
	}
	return res.Stdout
}

// CommandError describes an invocation that did not exit cleanly.
type CommandError struct {
	Program string
	Args    []string
	Result  Result
	Err     error
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s %s: %v", e.Program, e.Verb(), e.Err)
	if out := PrimaryOutput(e.Result); out != "" {
		msg += ": " + out
	}
	return msg
}

// Verb returns the subcommand words preceding the first flag, e.g. "group show".
func (e *CommandError) Verb() string {
	var words []string
	for _, arg := range e.Args {
		if strings.HasPrefix(arg, "-") {
			break
		}
		words = append(words, arg)
	}
	return strings.Join(words, " ")
}

// Unwrap exposes the process error.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Runner executes an external program with a discrete argument list.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) (Result, error)
}

// ExecRunner runs programs directly through os/exec, never through a shell,
// and collects their output in memory without echoing it.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run starts program and waits for it to exit. A non-zero exit status is
// returned as an *exec.ExitError alongside the captured output. Failures to
// start the process report an ExitCode of -1.
func (ExecRunner) Run(ctx context.Context, program string, args ...string) (Result, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	result := Result{
		Stdout: strings.TrimSpace(stdoutBuf.String()),
		Stderr: strings.TrimSpace(stderrBuf.String()),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	return result, err
}
