package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags "-X main.version=..." by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildInfo reports what the binary was built from.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// currentBuildInfo prefers the linker-injected values and falls back to the
// module version and VCS stamps recorded by the Go toolchain.
func currentBuildInfo() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date}
	if version != "dev" {
		return info
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.Date = s.Value
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "register-model %s\ncommit: %s\nbuilt: %s\n", info.Version, info.Commit, info.Date)
			return nil
		},
	}

	return cmd
}
