package cli

import (
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(locator ports.SSHConfigLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that ssh will read the config vmssh generates.",
		Long: `Resolves ~/.ssh/config and checks that it includes the file vmssh rewrites
for Multipass machines. Without that Include line ssh never sees the address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, locator)
		},
	}
}

func runCheckCmd(cmd *cobra.Command, locator ports.SSHConfigLocator) error {
	out := cmd.OutOrStdout()

	configPath, err := locator.ConfigPath()
	if err != nil {
		return err
	}
	includePath := filepath.Join(filepath.Dir(configPath), sshconfig.IncludeFileName)

	fmt.Fprintf(out, "%s %s\n", ui.InfoColor("ssh config:    "), ui.DetailColor(configPath))
	fmt.Fprintf(out, "%s %s\n", ui.InfoColor("generated file:"), ui.DetailColor(includePath))

	included, err := sshconfig.ReferencesInclude(configPath, sshconfig.IncludeFileName)
	if err != nil {
		return err
	}
	if !included {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Warning: %s does not include %s.", configPath, sshconfig.IncludeFileName)))
		fmt.Fprintln(out, ui.WarningColor("Add this line at the top of your ssh config:"))
		fmt.Fprintln(out, "  "+ui.CodeColor("Include "+sshconfig.IncludeFileName))
		return nil
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%s is included by your ssh config.", sshconfig.IncludeFileName)))
	return nil
}
