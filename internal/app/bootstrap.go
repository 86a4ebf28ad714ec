/*
Package app assembles the vmssh object graph.
*/
package app

import (
	"github.com/AntonioJCosta/vmssh/internal/adapters/machineregistry"
	"github.com/AntonioJCosta/vmssh/internal/adapters/providers"
	"github.com/AntonioJCosta/vmssh/internal/adapters/sshclient"
	"github.com/AntonioJCosta/vmssh/internal/config"
	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/AntonioJCosta/vmssh/internal/core/services/vmconnect"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
)

/*
NewConnectService builds the connect service.
The ssh config is located first, so a broken environment fails before anything is spawned.
*/
func NewConnectService(
	cfg *config.Config,
	locator ports.SSHConfigLocator,
	registry ports.MachineRegistry,
	executor ports.CommandExecutor,
) (ports.ConnectService, error) {
	configPath, err := locator.ConfigPath()
	if err != nil {
		return nil, err
	}

	writer := sshconfig.NewIncludeWriter(configPath)
	launchers := map[vm.Provider]ports.MachineLauncher{
		vm.Multipass:  providers.NewMultipassLauncher(executor, writer, cfg.MultipassStart),
		vm.VirtualBox: providers.NewVirtualBoxLauncher(executor),
	}
	return vmconnect.NewService(registry, launchers, sshclient.NewLauncher(executor)), nil
}

// NewRegistry returns the machine table compiled into the binary.
func NewRegistry() (ports.MachineRegistry, error) {
	return machineregistry.NewYAMLRegistry()
}
