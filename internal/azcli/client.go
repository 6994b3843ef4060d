package azcli

import "context"

// DefaultProgram is the Azure CLI executable looked up on PATH.
const DefaultProgram = "az"

// Client issues the Azure CLI queries and mutations used during model
// registration. Parameters are passed as discrete arguments so no value is
// ever interpreted by a shell.
type Client struct {
	runner  Runner
	program string
}

// NewClient returns a Client that invokes program through runner. An empty
// program selects DefaultProgram.
func NewClient(runner Runner, program string) *Client {
	if program == "" {
		program = DefaultProgram
	}
	return &Client{runner: runner, program: program}
}

// ShowResourceGroup describes a resource group.
func (c *Client) ShowResourceGroup(ctx context.Context, resourceGroup string) (Result, error) {
	return c.run(ctx, ShowResourceGroupArgs(resourceGroup))
}

// ShowWorkspace describes an ML workspace inside a resource group.
func (c *Client) ShowWorkspace(ctx context.Context, workspace, resourceGroup string) (Result, error) {
	return c.run(ctx, ShowWorkspaceArgs(workspace, resourceGroup))
}

// ShowModel describes a single model version in a workspace registry.
func (c *Client) ShowModel(ctx context.Context, model ModelRef) (Result, error) {
	return c.run(ctx, ShowModelArgs(model))
}

// CreateModel registers a new model version from a local path.
func (c *Client) CreateModel(ctx context.Context, spec ModelSpec) (Result, error) {
	return c.run(ctx, CreateModelArgs(spec))
}

// run invokes the program and wraps any failure in a *CommandError carrying
// the captured output.
func (c *Client) run(ctx context.Context, args []string) (Result, error) {
	res, err := c.runner.Run(ctx, c.program, args...)
	if err != nil {
		return res, &CommandError{Program: c.program, Args: args, Result: res, Err: err}
	}
	return res, nil
}

// ModelRef identifies a model version within a workspace.
type ModelRef struct {
	Name          string
	Version       string
	Workspace     string
	ResourceGroup string
}

// ModelSpec describes a model version to upload.
type ModelSpec struct {
	ModelRef
	Path string
	Type string
}

func ShowResourceGroupArgs(resourceGroup string) []string {
	return []string{"group", "show", "--name", resourceGroup}
}

func ShowWorkspaceArgs(workspace, resourceGroup string) []string {
	return []string{"ml", "workspace", "show", "--name", workspace, "--resource-group", resourceGroup}
}

func ShowModelArgs(model ModelRef) []string {
	return []string{
		"ml", "model", "show",
		"--name", model.Name,
		"--version", model.Version,
		"--workspace-name", model.Workspace,
		"--resource-group", model.ResourceGroup,
	}
}

func CreateModelArgs(spec ModelSpec) []string {
	return []string{
		"ml", "model", "create",
		"--name", spec.Name,
		"--version", spec.Version,
		"--path", spec.Path,
		"--workspace-name", spec.Workspace,
		"--resource-group", spec.ResourceGroup,
		"--type", spec.Type,
	}
}
