package cli

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewHostsCommand creates the 'hosts' subcommand.
func NewHostsCommand(registry ports.MachineRegistry, locator ports.SSHConfigLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "hosts",
		Short: "List Host entries of ~/.ssh/config and their vmssh provider.",
		Long: `Reads every "Host" line of ~/.ssh/config in file order and shows which of
them vmssh will bring up before connecting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHostsCmd(cmd, registry, locator)
		},
	}
}

func runHostsCmd(cmd *cobra.Command, registry ports.MachineRegistry, locator ports.SSHConfigLocator) error {
	configPath, err := locator.ConfigPath()
	if err != nil {
		return err
	}
	hosts, err := sshconfig.NewHostScanner(configPath).DefinedHosts()
	if err != nil {
		return fmt.Errorf("could not list hosts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(hosts) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No Host entries found in %s.", configPath)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Host entries:"), ui.DetailColor(configPath))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Host", "Provider"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, host := range hosts {
		provider := "-"
		if m, ok := registry.Lookup(host); ok {
			provider = m.Provider.String()
		}
		table.Append([]string{host, provider})
	}
	table.Render()
	return nil
}
