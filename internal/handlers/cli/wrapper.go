package cli

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/spf13/cobra"
)

/*
NewWrapperCommand creates the vmssh root command.
Flag parsing is disabled: every argument, including -h and --version, belongs to ssh.
*/
func NewWrapperCommand(connectService ports.ConnectService) *cobra.Command {
	return &cobra.Command{
		Use:   "vmssh [ssh arguments...]",
		Short: "vmssh brings up a known virtual machine and then runs ssh.",
		Long: `vmssh scans its arguments for the alias of a registered virtual machine.
The first registered alias found is prepared through its provider (Multipass or
VirtualBox), then ssh runs with the original arguments unchanged.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,

		// "completion" may well be a host name.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrapperCmd(args, connectService)
		},
	}
}

func runWrapperCmd(args []string, connectService ports.ConnectService) error {
	if connectService == nil {
		return fmt.Errorf("connect service not initialized")
	}
	return connectService.Connect(args)
}
