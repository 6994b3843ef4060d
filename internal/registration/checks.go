package registration

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/register-model/internal/azcli"
	"github.com/alexisbeaulieu97/register-model/internal/inputs"
	"github.com/alexisbeaulieu97/register-model/internal/logger"
)

// Checks groups the four leaf operations issued against the Azure CLI. Each
// reduces a command run to a boolean: existence is decided by exit status
// alone and stdout is never parsed.
type Checks struct {
	client *azcli.Client
	log    *logger.Logger
}

// NewChecks builds Checks over client. A nil log discards diagnostics.
func NewChecks(client *azcli.Client, log *logger.Logger) *Checks {
	if log == nil {
		log = logger.Nop()
	}
	return &Checks{client: client, log: log}
}

// ResourceGroupExists reports whether resourceGroup can be described. When it
// cannot, the returned error is the *azcli.CommandError carrying the output.
func (c *Checks) ResourceGroupExists(ctx context.Context, resourceGroup string) (bool, error) {
	res, err := c.client.ShowResourceGroup(ctx, resourceGroup)
	if err != nil {
		c.log.Failure(err, "Resource group not found or error occurred", azcli.PrimaryOutput(res))
		return false, err
	}
	c.log.Success("Resource group found", res.Stdout)
	return true, nil
}

// WorkspaceExists reports whether workspace can be described inside
// resourceGroup. The resource group itself is not re-checked.
func (c *Checks) WorkspaceExists(ctx context.Context, workspace, resourceGroup string) (bool, error) {
	res, err := c.client.ShowWorkspace(ctx, workspace, resourceGroup)
	if err != nil {
		c.log.Failure(err, "Workspace not found or error occurred", azcli.PrimaryOutput(res))
		return false, err
	}
	c.log.Success("Workspace found", res.Stdout)
	return true, nil
}

// ModelExists reports whether the exact name and version is registered. A
// miss is an ordinary answer, so nothing is logged at error level for it.
func (c *Checks) ModelExists(ctx context.Context, ref azcli.ModelRef) bool {
	res, err := c.client.ShowModel(ctx, ref)
	if err != nil {
		c.log.Debug(fmt.Sprintf("model lookup returned no match (exit code %d)", res.ExitCode))
		return false
	}
	c.log.Success("Model found", res.Stdout)
	return true
}

// RegisterModel uploads and records a new model version. It makes exactly
// one attempt.
func (c *Checks) RegisterModel(ctx context.Context, spec azcli.ModelSpec) (bool, error) {
	c.log.Info(fmt.Sprintf("Model path: %s", spec.Path))

	res, err := c.client.CreateModel(ctx, spec)
	if err != nil {
		c.log.Failure(err, "Model not registered or error occurred", azcli.PrimaryOutput(res))
		return false, err
	}
	c.log.Success("Model registered", res.Stdout)
	return true, nil
}

func modelRef(p inputs.Params) azcli.ModelRef {
	return azcli.ModelRef{
		Name:          p.ModelName,
		Version:       p.ModelVersion,
		Workspace:     p.WorkspaceName,
		ResourceGroup: p.ResourceGroup,
	}
}

func modelSpec(p inputs.Params) azcli.ModelSpec {
	return azcli.ModelSpec{
		ModelRef: modelRef(p),
		Path:     p.ModelPath,
		Type:     p.ModelType,
	}
}
