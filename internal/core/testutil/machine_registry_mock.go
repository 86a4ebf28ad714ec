package testutil

import "github.com/AntonioJCosta/vmssh/internal/core/domain/vm"

// MockMachineRegistry is an in-memory ports.MachineRegistry backed by a slice.
type MockMachineRegistry struct {
	Entries []vm.Machine
}

func (m *MockMachineRegistry) Lookup(alias string) (vm.Machine, bool) {
	for _, e := range m.Entries {
		if e.Alias == alias {
			return e, true
		}
	}
	return vm.Machine{}, false
}

func (m *MockMachineRegistry) Machines() []vm.Machine {
	return m.Entries
}
