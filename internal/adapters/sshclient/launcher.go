package sshclient

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

const sshBinary = "ssh"

// Launcher hands the terminal over to the system ssh client.
type Launcher struct {
	executor ports.CommandExecutor
}

// NewLauncher creates a Launcher that runs ssh through executor.
func NewLauncher(executor ports.CommandExecutor) ports.SSHLauncher {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &Launcher{executor: executor}
}

// Launch implements the ports.SSHLauncher interface.
// The arguments are passed through in order and unmodified.
func (l *Launcher) Launch(args []string) error {
	if err := l.executor.Run(sshBinary, args...); err != nil {
		return fmt.Errorf("failed to run ssh: %w", err)
	}
	return nil
}
