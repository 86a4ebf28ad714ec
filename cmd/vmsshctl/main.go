package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/vmssh/internal/app"
	"github.com/AntonioJCosta/vmssh/internal/config"
	"github.com/AntonioJCosta/vmssh/internal/handlers/cli"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/AntonioJCosta/vmssh/internal/logging"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading configuration: %v", err)))
		os.Exit(1)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	registry, err := app.NewRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading machine table: %v", err)))
		os.Exit(1)
	}

	rootCmd := cli.NewCtlRootCommand(Version, registry, sshconfig.NewPathResolver())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
