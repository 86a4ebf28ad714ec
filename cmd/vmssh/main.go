package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/vmssh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/vmssh/internal/app"
	"github.com/AntonioJCosta/vmssh/internal/config"
	"github.com/AntonioJCosta/vmssh/internal/handlers/cli"
	"github.com/AntonioJCosta/vmssh/internal/handlers/ui"
	"github.com/AntonioJCosta/vmssh/internal/logging"
	"github.com/AntonioJCosta/vmssh/internal/repositories/sshconfig"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("Error loading configuration", err)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	registry, err := app.NewRegistry()
	if err != nil {
		fatal("Error loading machine table", err)
	}

	connectSvc, err := app.NewConnectService(cfg, sshconfig.NewPathResolver(), registry, oscommand.NewOSCommandExecutor())
	if err != nil {
		fatal("Error locating ssh config", err)
	}

	// The ssh child's exit status is deliberately not propagated.
	if err := cli.NewWrapperCommand(connectSvc).Execute(); err != nil {
		fatal("Error", err)
	}
}

func fatal(context string, err error) {
	fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("vmssh: %s: %v", context, err)))
	os.Exit(1)
}
