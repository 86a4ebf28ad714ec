package ports

import "github.com/AntonioJCosta/vmssh/internal/core/domain/vm"

// ConnectService prepares the matching machine, if any, and hands over to ssh.
type ConnectService interface {
	// Connect launches the machine named by the first registered alias in args,
	// then runs ssh with args unchanged.
	Connect(args []string) error

	// Match reports which machine Connect would launch for args.
	Match(args []string) (vm.Machine, bool)
}
