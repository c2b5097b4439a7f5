package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "0.4.0"
	commit = "9f1c2e7"
	date = "2026-10-18"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "0.4.0")
	require.Contains(t, output, "9f1c2e7")
	require.Contains(t, output, "2026-10-18")
	require.Contains(t, output, "theme modes: light, dark")
}

func TestVersionCommandJSON(t *testing.T) {
	stdout, err := executeCommand(t, "version", "--json")
	require.NoError(t, err)

	var info struct {
		Version string   `json:"version"`
		Modes   []string `json:"modes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	require.Equal(t, version, info.Version)
	require.Equal(t, []string{"light", "dark"}, info.Modes)
}

func TestRootCommandListsSubcommands(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	for _, name := range []string{"resolve", "embed", "lightbox", "linkcard", "theme", "version"} {
		require.Contains(t, buf.String(), name)
	}
}
