package app

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/AntonioJCosta/vmssh/internal/config"
	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/testutil"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
	"github.com/stretchr/testify/require"
)

func unsetEnvVar(t *testing.T, key string) {
	t.Helper()
	originalValue, isset := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if isset {
			os.Setenv(key, originalValue)
		}
	})
}

func recordingExecutor() *testutil.MockCommandExecutor {
	return &testutil.MockCommandExecutor{
		RunFunc:    func(string, ...string) error { return nil },
		OutputFunc: func(string, ...string) ([]byte, error) { return []byte("192.168.64.7\n"), nil },
	}
}

func TestNewConnectService_MissingHomeSpawnsNothing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME is not consulted on windows")
	}
	unsetEnvVar(t, "HOME")
	exec := recordingExecutor()

	svc, err := NewConnectService(&config.Config{}, sshconfig.NewPathResolver(), &testutil.MockMachineRegistry{}, exec)
	require.ErrorIs(t, err, sshconfig.ErrEnvNotDefined)
	require.ErrorContains(t, err, "HOME not defined")
	require.Nil(t, svc)
	require.Empty(t, exec.Calls)
}

func TestNewConnectService_MissingConfigSpawnsNothing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME is not consulted on windows")
	}
	t.Setenv("HOME", t.TempDir())
	exec := recordingExecutor()

	_, err := NewConnectService(&config.Config{}, sshconfig.NewPathResolver(), &testutil.MockMachineRegistry{}, exec)
	require.ErrorIs(t, err, sshconfig.ErrConfigNotFound)
	require.Empty(t, exec.Calls)
}

func TestNewConnectService_Wiring(t *testing.T) {
	sshDir := t.TempDir()
	configPath := filepath.Join(sshDir, "config")
	require.NoError(t, os.WriteFile(configPath, nil, 0644))
	locator := &testutil.MockSSHConfigLocator{ConfigPathFunc: func() (string, error) { return configPath, nil }}
	registry := &testutil.MockMachineRegistry{Entries: []vm.Machine{{Alias: "work", Provider: vm.Multipass}}}

	t.Run("multipass start disabled by default", func(t *testing.T) {
		exec := recordingExecutor()
		svc, err := NewConnectService(&config.Config{}, locator, registry, exec)
		require.NoError(t, err)

		require.NoError(t, svc.Connect([]string{"work"}))
		require.Equal(t, []string{
			"multipass exec work -- .local/bin/get-ip 192",
			"ssh work",
		}, exec.Calls)
		require.FileExists(t, filepath.Join(sshDir, "multipassvm.conf"))
	})

	t.Run("multipass start opted in", func(t *testing.T) {
		exec := recordingExecutor()
		svc, err := NewConnectService(&config.Config{MultipassStart: true}, locator, registry, exec)
		require.NoError(t, err)

		require.NoError(t, svc.Connect([]string{"work"}))
		require.Equal(t, "multipass start work", exec.Calls[0])
	})

	t.Run("locator error is returned", func(t *testing.T) {
		locErr := errors.New("no config")
		failing := &testutil.MockSSHConfigLocator{ConfigPathFunc: func() (string, error) { return "", locErr }}
		_, err := NewConnectService(&config.Config{}, failing, registry, recordingExecutor())
		require.ErrorIs(t, err, locErr)
	})
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.NotEmpty(t, registry.Machines())
}
