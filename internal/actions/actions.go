// Package actions speaks the GitHub Actions runner protocol: input
// environment variables and workflow commands written to stdout.
package actions

import (
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

// FailurePrefix is prepended to every failure message reported to the runner.
const FailurePrefix = "❌ Action failed: "

// Runner reads action inputs and issues workflow commands.
type Runner struct {
	action *githubactions.Action
	getenv githubactions.GetenvFunc
}

// New returns a Runner that looks up the environment through getenv and
// writes workflow commands to w. A nil getenv reads the process environment.
func New(getenv githubactions.GetenvFunc, w io.Writer) *Runner {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Runner{
		action: githubactions.New(githubactions.WithGetenv(getenv), githubactions.WithWriter(w)),
		getenv: getenv,
	}
}

// GetInput returns the trimmed value of the named action input, e.g.
// "resource-group" is read from INPUT_RESOURCE-GROUP.
func (r *Runner) GetInput(name string) string {
	return r.action.GetInput(name)
}

// Running reports whether the process is executing inside a GitHub Actions runner.
func (r *Runner) Running() bool {
	return r.getenv("GITHUB_ACTIONS") == "true"
}

// SetFailed emits an error workflow command for msg. The caller is
// responsible for exiting with a non-zero status afterwards.
func (r *Runner) SetFailed(msg string) {
	r.action.Errorf("%s", FailurePrefix+msg)
}

// Notice emits a notice workflow command.
func (r *Runner) Notice(msg string) {
	r.action.Noticef("%s", msg)
}
