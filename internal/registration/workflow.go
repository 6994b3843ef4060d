package registration

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/register-model/internal/inputs"
	"github.com/alexisbeaulieu97/register-model/internal/logger"
	regerrors "github.com/alexisbeaulieu97/register-model/pkg/errors"
)

// State is a position in the registration state machine.
type State string

const (
	StateStart                  State = "start"
	StateParamsValidated        State = "params_validated"
	StateResourceGroupConfirmed State = "resource_group_confirmed"
	StateWorkspaceConfirmed     State = "workspace_confirmed"
	StateModelChecked           State = "model_checked"
	StateAlreadyRegistered      State = "already_registered"
	StateRegistered             State = "registered"
	StateRegistrationSkipped    State = "registration_skipped"
	StateRegistrationFailed     State = "registration_failed"
)

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	switch s {
	case StateAlreadyRegistered, StateRegistered, StateRegistrationSkipped, StateRegistrationFailed:
		return true
	default:
		return false
	}
}

// Succeeded reports whether s ends the run with a success signal.
func (s State) Succeeded() bool {
	switch s {
	case StateAlreadyRegistered, StateRegistered, StateRegistrationSkipped:
		return true
	default:
		return false
	}
}

// Outcome is the final state reached by a run.
type Outcome struct {
	State  State
	Params inputs.Params
}

// Options tunes a Workflow.
type Options struct {
	// DryRun stops before create-model and reports StateRegistrationSkipped
	// when the model is absent.
	DryRun bool
}

// Workflow verifies the resource group and workspace, then registers the
// model version unless it is already present.
type Workflow struct {
	checks *Checks
	log    *logger.Logger
	opts   Options
}

// NewWorkflow constructs a Workflow. A nil log discards diagnostics.
func NewWorkflow(checks *Checks, log *logger.Logger, opts Options) *Workflow {
	if log == nil {
		log = logger.Nop()
	}
	return &Workflow{checks: checks, log: log, opts: opts}
}

// transition advances the machine by one step. A non-nil error is fatal and
// ends the run; a terminal state ends it successfully.
type transition func(ctx context.Context, p inputs.Params) (State, error)

// Run drives the state machine to completion. On a fatal transition the
// returned Outcome holds the last state reached and the error describes the
// failure.
func (w *Workflow) Run(ctx context.Context, p inputs.Params) (Outcome, error) {
	outcome := Outcome{State: StateStart, Params: p}

	steps := []transition{
		w.validateParams,
		w.confirmResourceGroup,
		w.confirmWorkspace,
		w.checkModel,
		w.register,
	}

	for _, step := range steps {
		next, err := step(ctx, p)
		if next != "" {
			outcome.State = next
		}
		if err != nil {
			return outcome, err
		}
		if outcome.State.Terminal() {
			break
		}
	}

	return outcome, nil
}

func (w *Workflow) validateParams(_ context.Context, p inputs.Params) (State, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return StateParamsValidated, nil
}

func (w *Workflow) confirmResourceGroup(ctx context.Context, p inputs.Params) (State, error) {
	w.log.Progress(fmt.Sprintf("Checking if resource group '%s' exists...", p.ResourceGroup))
	if ok, err := w.checks.ResourceGroupExists(ctx, p.ResourceGroup); !ok {
		return "", regerrors.NewResourceGroupNotFoundError(p.ResourceGroup, err)
	}
	w.log.Success(fmt.Sprintf("Resource group '%s' exists.", p.ResourceGroup), "")
	return StateResourceGroupConfirmed, nil
}

func (w *Workflow) confirmWorkspace(ctx context.Context, p inputs.Params) (State, error) {
	w.log.Progress(fmt.Sprintf("Checking if workspace '%s' exists in resource group '%s'...", p.WorkspaceName, p.ResourceGroup))
	if ok, err := w.checks.WorkspaceExists(ctx, p.WorkspaceName, p.ResourceGroup); !ok {
		return "", regerrors.NewWorkspaceNotFoundError(p.WorkspaceName, p.ResourceGroup, err)
	}
	w.log.Success(fmt.Sprintf("Workspace '%s' exists in resource group '%s'.", p.WorkspaceName, p.ResourceGroup), "")
	return StateWorkspaceConfirmed, nil
}

func (w *Workflow) checkModel(ctx context.Context, p inputs.Params) (State, error) {
	w.log.Progress(fmt.Sprintf("Checking if model '%s' exists in workspace '%s'...", p.ModelName, p.WorkspaceName))
	if w.checks.ModelExists(ctx, modelRef(p)) {
		w.log.Success(fmt.Sprintf("Model '%s' with version '%s' already exists in workspace '%s'.", p.ModelName, p.ModelVersion, p.WorkspaceName), "")
		return StateAlreadyRegistered, nil
	}
	return StateModelChecked, nil
}

func (w *Workflow) register(ctx context.Context, p inputs.Params) (State, error) {
	if w.opts.DryRun {
		w.log.Info(fmt.Sprintf("Dry run: model '%s' with version '%s' would be registered in workspace '%s'.", p.ModelName, p.ModelVersion, p.WorkspaceName))
		return StateRegistrationSkipped, nil
	}

	w.log.Progress(fmt.Sprintf("Registering model '%s' with version '%s' in workspace '%s'...", p.ModelName, p.ModelVersion, p.WorkspaceName))
	if ok, err := w.checks.RegisterModel(ctx, modelSpec(p)); !ok {
		return StateRegistrationFailed, regerrors.NewRegistrationError(p.ModelName, p.ModelVersion, p.WorkspaceName, err)
	}
	w.log.Success(fmt.Sprintf("Model '%s' with version '%s' registered in workspace '%s'.", p.ModelName, p.ModelVersion, p.WorkspaceName), "")
	return StateRegistered, nil
}
