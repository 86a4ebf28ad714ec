package ports

import "github.com/AntonioJCosta/vmssh/internal/core/domain/vm"

// MachineRegistry is the immutable table of known machines.
type MachineRegistry interface {
	// Lookup returns the machine registered under alias, if any.
	Lookup(alias string) (vm.Machine, bool)

	// Machines returns every registered machine in table order.
	Machines() []vm.Machine
}
