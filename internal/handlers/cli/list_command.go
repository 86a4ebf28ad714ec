package cli

import (
	"fmt"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(registry ports.MachineRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the machines vmssh brings up.",
		Long:  `Displays the alias table compiled into vmssh with each alias's provider.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, registry)
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, registry ports.MachineRegistry) error {
	out := cmd.OutOrStdout()
	machines := registry.Machines()
	if len(machines) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No machines are registered."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Registered machines:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Provider", "Generates"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, m := range machines {
		generates := "-"
		if m.Provider == vm.Multipass {
			generates = sshconfig.IncludeFileName
		}
		table.Append([]string{m.Alias, m.Provider.String(), generates})
	}
	table.Render()
	return nil
}
