package cli

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewCtlRootCommand creates the vmsshctl root command and its subcommands.
func NewCtlRootCommand(
	version string,
	registry ports.MachineRegistry,
	locator ports.SSHConfigLocator,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vmsshctl",
		Short: "vmsshctl inspects the machines and ssh config used by vmssh.",
		Long: `vmsshctl shows which aliases vmssh will bring up, how they relate to the
Host entries of your ssh config, and what the generated config looks like.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if registry == nil && (cmd.Name() == "list" || cmd.Name() == "hosts") {
				return fmt.Errorf("machine registry not initialized for command %s", cmd.Name())
			}
			if locator == nil && (cmd.Name() == "hosts" || cmd.Name() == "check") {
				return fmt.Errorf("ssh config locator not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewListCommand(registry))
	rootCmd.AddCommand(NewHostsCommand(registry, locator))
	rootCmd.AddCommand(NewCheckCommand(locator))
	rootCmd.AddCommand(NewSnippetCommand())

	return rootCmd
}
