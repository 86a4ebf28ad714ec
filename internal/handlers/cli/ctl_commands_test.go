package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/AntonioJCosta/vmssh/internal/core/testutil"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *testutil.MockMachineRegistry {
	return &testutil.MockMachineRegistry{Entries: []vm.Machine{
		{Alias: "work", Provider: vm.Multipass},
		{Alias: "lab", Provider: vm.VirtualBox},
	}}
}

func writeSSHConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func locatorFor(path string) *testutil.MockSSHConfigLocator {
	return &testutil.MockSSHConfigLocator{ConfigPathFunc: func() (string, error) { return path, nil }}
}

func executeCtl(t *testing.T, registry ports.MachineRegistry, locator ports.SSHConfigLocator, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCtlRootCommand("test", registry, locator)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := executeCtl(t, newTestRegistry(), nil, "list")
	require.NoError(t, err)
	require.Contains(t, out, "work")
	require.Contains(t, out, "multipass")
	require.Contains(t, out, "multipassvm.conf")
	require.Contains(t, out, "lab")
	require.Contains(t, out, "virtualbox")
	require.Less(t, strings.Index(out, "work"), strings.Index(out, "lab"), "table order must follow the registry")
}

func TestListCommand_Empty(t *testing.T) {
	out, err := executeCtl(t, &testutil.MockMachineRegistry{}, nil, "list")
	require.NoError(t, err)
	require.Contains(t, out, "No machines are registered.")
}

func TestListCommand_NilRegistry(t *testing.T) {
	_, err := executeCtl(t, nil, nil, "list")
	require.ErrorContains(t, err, "machine registry not initialized")
}

func TestHostsCommand(t *testing.T) {
	configPath := writeSSHConfig(t, "Host work\n  Hostname placeholder\nHost github.com\nHost lab\n")

	out, err := executeCtl(t, newTestRegistry(), locatorFor(configPath), "hosts")
	require.NoError(t, err)
	require.Contains(t, out, "github.com")
	require.Contains(t, out, "virtualbox")
	require.Less(t, strings.Index(out, "work"), strings.Index(out, "github.com"))
	require.Less(t, strings.Index(out, "github.com"), strings.Index(out, "| lab"))
}

func TestHostsCommand_NoHosts(t *testing.T) {
	configPath := writeSSHConfig(t, "# nothing here\n")

	out, err := executeCtl(t, newTestRegistry(), locatorFor(configPath), "hosts")
	require.NoError(t, err)
	require.Contains(t, out, "No Host entries found")
}

func TestHostsCommand_LocatorError(t *testing.T) {
	locErr := errors.New("HOME not defined")
	locator := &testutil.MockSSHConfigLocator{ConfigPathFunc: func() (string, error) { return "", locErr }}

	_, err := executeCtl(t, newTestRegistry(), locator, "hosts")
	require.ErrorIs(t, err, locErr)
}

func TestCheckCommand(t *testing.T) {
	t.Run("include present", func(t *testing.T) {
		configPath := writeSSHConfig(t, "Include multipassvm.conf\n")
		out, err := executeCtl(t, nil, locatorFor(configPath), "check")
		require.NoError(t, err)
		require.Contains(t, out, "is included by your ssh config")
		require.Contains(t, out, filepath.Join(filepath.Dir(configPath), "multipassvm.conf"))
	})

	t.Run("include missing", func(t *testing.T) {
		configPath := writeSSHConfig(t, "Host work\n")
		out, err := executeCtl(t, nil, locatorFor(configPath), "check")
		require.NoError(t, err)
		require.Contains(t, out, "does not include multipassvm.conf")
		require.Contains(t, out, "Include multipassvm.conf")
	})
}

func TestSnippetCommand(t *testing.T) {
	out, err := executeCtl(t, nil, nil, "snippet", "work", "192.168.64.7")
	require.NoError(t, err)
	require.Contains(t, out, "Host work\n")
	require.Contains(t, out, "Hostname 192.168.64.7\n")
	require.Contains(t, out, "User ubuntu\n")
	require.Contains(t, out, "StrictHostKeyChecking no\n")
	require.Contains(t, out, "UserKnownHostsFile "+os.DevNull)

	_, err = executeCtl(t, nil, nil, "snippet", "work", "not-an-ip")
	require.ErrorContains(t, err, "invalid IP address")

	_, err = executeCtl(t, nil, nil, "snippet", "work")
	require.Error(t, err)
}
