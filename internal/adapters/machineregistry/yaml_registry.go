package machineregistry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed machines.yaml
var embeddedMachines []byte

type machineEntry struct {
	Alias    string `yaml:"alias"`
	Provider string `yaml:"provider"`
}

// YAMLRegistry implements the MachineRegistry interface from a YAML table compiled into the binary.
type YAMLRegistry struct {
	machines []vm.Machine
	byAlias  map[string]vm.Machine
}

// NewYAMLRegistry decodes the embedded machine table.
func NewYAMLRegistry() (ports.MachineRegistry, error) {
	return newYAMLRegistry(embeddedMachines)
}

func newYAMLRegistry(data []byte) (*YAMLRegistry, error) {
	entries := []machineEntry{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal embedded machine table: %w", err)
	}

	r := &YAMLRegistry{
		machines: make([]vm.Machine, 0, len(entries)),
		byAlias:  make(map[string]vm.Machine, len(entries)),
	}
	for i, entry := range entries {
		if entry.Alias == "" {
			return nil, fmt.Errorf("machine table entry %d has an empty alias", i+1)
		}
		provider, err := vm.ParseProvider(entry.Provider)
		if err != nil {
			return nil, fmt.Errorf("machine table entry %q: %w", entry.Alias, err)
		}
		if _, exists := r.byAlias[entry.Alias]; exists {
			return nil, fmt.Errorf("machine table lists alias %q more than once", entry.Alias)
		}
		machine := vm.Machine{Alias: entry.Alias, Provider: provider}
		r.machines = append(r.machines, machine)
		r.byAlias[entry.Alias] = machine
	}
	return r, nil
}

// Lookup implements the ports.MachineRegistry interface.
func (r *YAMLRegistry) Lookup(alias string) (vm.Machine, bool) {
	m, ok := r.byAlias[alias]
	return m, ok
}

// Machines implements the ports.MachineRegistry interface.
// The returned slice is a copy; the registry itself never changes.
func (r *YAMLRegistry) Machines() []vm.Machine {
	out := make([]vm.Machine, len(r.machines))
	copy(out, r.machines)
	return out
}
