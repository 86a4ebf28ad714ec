package providers

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

const vboxManageBinary = "VBoxManage"

// VirtualBoxLauncher boots VirtualBox machines without a window.
type VirtualBoxLauncher struct {
	executor ports.CommandExecutor
}

// NewVirtualBoxLauncher creates a launcher for VirtualBox machines.
func NewVirtualBoxLauncher(executor ports.CommandExecutor) ports.MachineLauncher {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &VirtualBoxLauncher{executor: executor}
}

// Launch implements the ports.MachineLauncher interface.
// A machine that is already running makes VBoxManage fail, which is not reported.
func (l *VirtualBoxLauncher) Launch(alias string) error {
	if err := l.executor.Run(vboxManageBinary, "startvm", alias, "--type", "headless"); err != nil {
		return fmt.Errorf("failed to start virtualbox machine '%s': %w", alias, err)
	}
	return nil
}
