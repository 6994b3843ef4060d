package main

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/register-model/internal/actions"
)

func setBuildVars(t *testing.T, v, c, d string) {
	t.Helper()

	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = v, c, d
}

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()

	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func executeVersion(t *testing.T) string {
	t.Helper()

	buf := &bytes.Buffer{}
	root, err := newRootCmd(actions.New(func(string) string { return "" }, buf))
	require.NoError(t, err)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	return buf.String()
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setBuildVars(t, "1.2.3", "abcdef1", "2026-10-03")
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	output := executeVersion(t)
	require.Contains(t, output, "register-model 1.2.3")
	require.Contains(t, output, "commit: abcdef1")
	require.Contains(t, output, "built: 2026-10-03")
}

func TestVersionCommandFallsBackToModuleBuildInfo(t *testing.T) {
	setBuildVars(t, "dev", "none", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0f3c2a9"},
			{Key: "vcs.time", Value: "2026-09-30T12:00:00Z"},
		},
	})

	output := executeVersion(t)
	require.Contains(t, output, "register-model v0.4.1")
	require.Contains(t, output, "commit: 0f3c2a9")
	require.Contains(t, output, "built: 2026-09-30T12:00:00Z")
}

func TestVersionCommandKeepsDefaultsForDevelBuilds(t *testing.T) {
	setBuildVars(t, "dev", "none", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	output := executeVersion(t)
	require.Contains(t, output, "register-model dev")
	require.Contains(t, output, "commit: none")
}
