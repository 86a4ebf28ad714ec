/*
Package vm defines the core domain entities for virtual machines reachable over ssh.
*/
package vm

import (
	"fmt"
	"strings"
)

// Provider identifies the virtualization backend that owns a machine.
type Provider int

const (
	// Multipass machines are queried for their IP and get a generated ssh config block.
	Multipass Provider = iota + 1
	// VirtualBox machines are started headless and reached through the user's own ssh config.
	VirtualBox
)

// String returns the canonical lower-case name of the provider.
func (p Provider) String() string {
	switch p {
	case Multipass:
		return "multipass"
	case VirtualBox:
		return "virtualbox"
	default:
		return fmt.Sprintf("provider(%d)", int(p))
	}
}

// ParseProvider converts a provider name into a Provider. Matching is case-insensitive.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "multipass":
		return Multipass, nil
	case "virtualbox", "vbox":
		return VirtualBox, nil
	default:
		return 0, fmt.Errorf("unknown provider %q", name)
	}
}

/*
Machine associates a host alias with the provider responsible for it.
The alias is both the ssh destination and the provider's instance name.
*/
type Machine struct {
	Alias    string
	Provider Provider
}
