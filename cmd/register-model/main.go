package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/register-model/internal/actions"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run executes the root command and converts a fatal error into the
// runner's failure report. It returns the process exit code.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	gh := actions.New(getenv, stdout)

	cmd, err := newRootCmd(gh)
	if err != nil {
		fmt.Fprintf(stderr, "failed to prepare command: %v\n", err)
		return 1
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		gh.SetFailed(err.Error())
		return 1
	}
	return 0
}
