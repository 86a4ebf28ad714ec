package providers

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/vmssh/internal/core/testutil"
	"github.com/stretchr/testify/require"
)

func TestVirtualBoxLauncher_Launch(t *testing.T) {
	t.Run("starts headless", func(t *testing.T) {
		exec := &testutil.MockCommandExecutor{
			RunFunc: func(string, ...string) error { return nil },
		}

		require.NoError(t, NewVirtualBoxLauncher(exec).Launch("lab"))
		require.Equal(t, []string{"VBoxManage startvm lab --type headless"}, exec.Calls)
	})

	t.Run("spawn failure is returned", func(t *testing.T) {
		spawnErr := errors.New("executable file not found")
		exec := &testutil.MockCommandExecutor{
			RunFunc: func(string, ...string) error { return spawnErr },
		}

		err := NewVirtualBoxLauncher(exec).Launch("lab")
		require.ErrorIs(t, err, spawnErr)
		require.ErrorContains(t, err, "failed to start virtualbox machine 'lab'")
	})

	t.Run("panics on nil executor", func(t *testing.T) {
		require.Panics(t, func() { NewVirtualBoxLauncher(nil) })
	})
}
