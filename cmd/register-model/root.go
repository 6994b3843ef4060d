package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	registermodel "github.com/alexisbeaulieu97/register-model"
	"github.com/alexisbeaulieu97/register-model/internal/actions"
	"github.com/alexisbeaulieu97/register-model/internal/azcli"
	"github.com/alexisbeaulieu97/register-model/internal/inputs"
	"github.com/alexisbeaulieu97/register-model/internal/logger"
	"github.com/alexisbeaulieu97/register-model/internal/registration"
	"github.com/alexisbeaulieu97/register-model/internal/report"
)

type rootFlags struct {
	verbose  bool
	dryRun   bool
	jsonLogs bool
	azPath   string
}

// newRunner supplies the command runner; tests replace it with a fake.
var newRunner = func() azcli.Runner {
	return azcli.ExecRunner{}
}

func newRootCmd(gh *actions.Runner) (*cobra.Command, error) {
	flags := &rootFlags{}

	defs, err := inputs.ParseDefinitions(registermodel.ActionMetadata)
	if err != nil {
		return nil, err
	}
	resolver := inputs.NewResolver(defs, gh)

	cmd := &cobra.Command{
		Use:   "register-model",
		Short: "Register a model version in an Azure ML workspace unless it already exists",
		Long: "Verifies the resource group and workspace, then registers the model version.\n" +
			"Inputs are read from flags or from the GitHub Actions INPUT_* environment.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolver.Read()
			if err != nil {
				return err
			}
			return runRegister(cmd, gh, flags, params)
		},
	}

	if err := resolver.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Verify prerequisites and look up the model without registering it")
	cmd.Flags().BoolVar(&flags.jsonLogs, "json-logs", false, "Emit logs as JSON lines")
	cmd.Flags().StringVar(&flags.azPath, "az-path", azcli.DefaultProgram, "Azure CLI executable")

	cmd.AddCommand(newVersionCmd())

	return cmd, nil
}

func runRegister(cmd *cobra.Command, gh *actions.Runner, flags *rootFlags, params inputs.Params) error {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	out := cmd.OutOrStdout()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.jsonLogs,
		NoColor:       gh.Running() || !isTerminal(out),
		Writer:        out,
	})
	if err != nil {
		return err
	}
	fields := params.Fields()
	fields["run_id"] = uuid.NewString()
	log = log.WithFields(fields)

	client := azcli.NewClient(newRunner(), flags.azPath)
	flow := registration.NewWorkflow(
		registration.NewChecks(client, log),
		log,
		registration.Options{DryRun: flags.dryRun},
	)

	// A fatal error is reported by the summary line and by SetFailed in run.
	outcome, runErr := flow.Run(cmd.Context(), params)
	if err := report.NewRenderer(out).Print(outcome, runErr); err != nil && runErr == nil {
		return err
	}
	if runErr == nil && outcome.State == registration.StateRegistered && gh.Running() {
		gh.Notice(fmt.Sprintf("Registered model '%s' version '%s' in workspace '%s'", params.ModelName, params.ModelVersion, params.WorkspaceName))
	}
	return runErr
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
