package vmconnect

import (
	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// firstRegistered scans args left to right and returns the machine for the first exact alias hit.
func firstRegistered(args []string, registry ports.MachineRegistry) (vm.Machine, bool) {
	for _, arg := range args {
		if machine, ok := registry.Lookup(arg); ok {
			return machine, true
		}
	}
	return vm.Machine{}, false
}
