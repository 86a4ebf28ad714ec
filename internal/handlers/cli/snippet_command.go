package cli

import (
	"fmt"
	"net"

	"github.com/AntonioJCosta/vmssh/internal/adapters/providers"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSnippetCommand creates the 'snippet' subcommand.
func NewSnippetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snippet <alias> <ip>",
		Short: "Print the ssh config vmssh would generate for a Multipass machine.",
		Long:  `Renders the Host block written for a Multipass machine without running any provider command.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnippetCmd(cmd, args[0], args[1])
		},
	}
}

func runSnippetCmd(cmd *cobra.Command, alias, ip string) error {
	if net.ParseIP(ip) == nil {
		return fmt.Errorf("invalid IP address %q", ip)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.CodeColor(providers.HostBlock(alias, ip).Render()))
	return nil
}
