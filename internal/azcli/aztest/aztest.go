// Package aztest provides an in-memory stand-in for the Azure CLI that
// understands the invocations issued by azcli.Client.
package aztest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/register-model/internal/azcli"
)

// ErrExit is returned for any invocation the fake answers with a non-zero status.
var ErrExit = errors.New("exit status 3")

// Call records one invocation.
type Call struct {
	Program string
	Args    []string
}

// Verb returns the subcommand portion of the call, e.g. "ml model create".
func (c Call) Verb() string {
	var parts []string
	for _, arg := range c.Args {
		if strings.HasPrefix(arg, "--") {
			break
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Flag returns the value following name, or "" when absent.
func (c Call) Flag(name string) string {
	idx := slices.Index(c.Args, name)
	if idx < 0 || idx+1 >= len(c.Args) {
		return ""
	}
	return c.Args[idx+1]
}

// Fake is an azcli.Runner backed by in-memory resource state. Models created
// through "ml model create" become visible to later "ml model show" calls.
type Fake struct {
	mu sync.Mutex

	ResourceGroups map[string]bool
	// Workspaces is keyed by "<resource-group>/<workspace>".
	Workspaces map[string]bool
	// Models is keyed by "<resource-group>/<workspace>/<name>:<version>".
	Models map[string]bool

	// FailCreate makes every create-model call fail with CreateStderr.
	FailCreate   bool
	CreateStderr string
	// StartErr, when set, is returned for every call as if the program could not be started.
	StartErr error

	calls []Call
}

var _ azcli.Runner = (*Fake)(nil)

// New returns a Fake containing one resource group and one workspace.
func New(resourceGroup, workspace string) *Fake {
	return &Fake{
		ResourceGroups: map[string]bool{resourceGroup: true},
		Workspaces:     map[string]bool{WorkspaceKey(resourceGroup, workspace): true},
		Models:         map[string]bool{},
	}
}

func WorkspaceKey(resourceGroup, workspace string) string {
	return resourceGroup + "/" + workspace
}

func ModelKey(resourceGroup, workspace, name, version string) string {
	return fmt.Sprintf("%s/%s/%s:%s", resourceGroup, workspace, name, version)
}

// AddModel marks a model version as registered.
func (f *Fake) AddModel(resourceGroup, workspace, name, version string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Models == nil {
		f.Models = map[string]bool{}
	}
	f.Models[ModelKey(resourceGroup, workspace, name, version)] = true
}

// Calls returns a copy of every recorded invocation.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallsTo returns recorded invocations matching verb.
func (f *Fake) CallsTo(verb string) []Call {
	var matched []Call
	for _, call := range f.Calls() {
		if call.Verb() == verb {
			matched = append(matched, call)
		}
	}
	return matched
}

func (f *Fake) Run(_ context.Context, program string, args ...string) (azcli.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Program: program, Args: slices.Clone(args)}
	f.calls = append(f.calls, call)

	if f.StartErr != nil {
		return azcli.Result{ExitCode: -1}, f.StartErr
	}

	rg := call.Flag("--resource-group")
	switch call.Verb() {
	case "group show":
		name := call.Flag("--name")
		if f.ResourceGroups[name] {
			return found(fmt.Sprintf(`{"name": %q}`, name))
		}
		return missing(fmt.Sprintf("ERROR: (ResourceGroupNotFound) Resource group '%s' could not be found.", name))
	case "ml workspace show":
		name := call.Flag("--name")
		if f.Workspaces[WorkspaceKey(rg, name)] {
			return found(fmt.Sprintf(`{"name": %q}`, name))
		}
		return missing(fmt.Sprintf("ERROR: (ResourceNotFound) The Resource '%s' under resource group '%s' was not found.", name, rg))
	case "ml model show":
		key := ModelKey(rg, call.Flag("--workspace-name"), call.Flag("--name"), call.Flag("--version"))
		if f.Models[key] {
			return found(fmt.Sprintf(`{"name": %q, "version": %q}`, call.Flag("--name"), call.Flag("--version")))
		}
		return missing("ERROR: (UserError) Resource not found.")
	case "ml model create":
		if f.FailCreate {
			return missing(f.CreateStderr)
		}
		if f.Models == nil {
			f.Models = map[string]bool{}
		}
		f.Models[ModelKey(rg, call.Flag("--workspace-name"), call.Flag("--name"), call.Flag("--version"))] = true
		return found(fmt.Sprintf(`{"name": %q, "version": %q, "type": %q}`, call.Flag("--name"), call.Flag("--version"), call.Flag("--type")))
	default:
		return missing(fmt.Sprintf("ERROR: '%s' is misspelled or not recognized by the system.", call.Verb()))
	}
}

func found(stdout string) (azcli.Result, error) {
	return azcli.Result{Stdout: stdout}, nil
}

func missing(stderr string) (azcli.Result, error) {
	return azcli.Result{Stderr: stderr, ExitCode: 3}, ErrExit
}
