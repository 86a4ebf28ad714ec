package vmconnect

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// ErrNoLauncher is returned when a registered machine's provider has no launcher configured.
var ErrNoLauncher = errors.New("no launcher configured for provider")

type service struct {
	registry  ports.MachineRegistry
	launchers map[vm.Provider]ports.MachineLauncher
	ssh       ports.SSHLauncher
}

// NewService creates a new connect service.
// It panics if registry or sshLauncher is nil.
func NewService(
	registry ports.MachineRegistry,
	launchers map[vm.Provider]ports.MachineLauncher,
	sshLauncher ports.SSHLauncher,
) ports.ConnectService {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if sshLauncher == nil {
		panic("sshLauncher cannot be nil")
	}
	return &service{registry: registry, launchers: launchers, ssh: sshLauncher}
}

// Match implements the ports.ConnectService interface.
func (s *service) Match(args []string) (vm.Machine, bool) {
	return firstRegistered(args, s.registry)
}

// Connect implements the ports.ConnectService interface.
func (s *service) Connect(args []string) error {
	if machine, ok := s.Match(args); ok {
		slog.Debug("matched machine", "alias", machine.Alias, "provider", machine.Provider)
		launcher, found := s.launchers[machine.Provider]
		if !found || launcher == nil {
			return fmt.Errorf("%w %s (alias '%s')", ErrNoLauncher, machine.Provider, machine.Alias)
		}
		if err := launcher.Launch(machine.Alias); err != nil {
			return fmt.Errorf("failed to prepare machine '%s': %w", machine.Alias, err)
		}
	}
	return s.ssh.Launch(args)
}
