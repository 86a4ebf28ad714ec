package providers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/sshhost"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// ErrInvalidOutput is returned when a provider command prints something that is not UTF-8 text.
var ErrInvalidOutput = errors.New("provider output is not valid UTF-8")

const (
	multipassBinary = "multipass"
	multipassUser   = "ubuntu"
)

// getIPScript runs inside the guest and prints the address whose first octet is getIPPrefix.
const (
	getIPScript = ".local/bin/get-ip"
	getIPPrefix = "192"
)

// MultipassLauncher looks up a Multipass instance's address and rewrites the generated ssh config for it.
type MultipassLauncher struct {
	executor     ports.CommandExecutor
	writer       ports.HostConfigWriter
	startMachine bool
}

/*
NewMultipassLauncher creates a launcher for Multipass instances.
When startMachine is false the instance is assumed to be running already and
only its address is queried; when true `multipass start` is issued first.
*/
func NewMultipassLauncher(executor ports.CommandExecutor, writer ports.HostConfigWriter, startMachine bool) ports.MachineLauncher {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	return &MultipassLauncher{executor: executor, writer: writer, startMachine: startMachine}
}

// Launch implements the ports.MachineLauncher interface.
func (l *MultipassLauncher) Launch(alias string) error {
	if l.startMachine {
		if err := l.executor.Run(multipassBinary, "start", alias); err != nil {
			return fmt.Errorf("failed to start multipass instance '%s': %w", alias, err)
		}
	}

	out, err := l.executor.Output(multipassBinary, "exec", alias, "--", getIPScript, getIPPrefix)
	if err != nil {
		return fmt.Errorf("failed to query address of multipass instance '%s': %w", alias, err)
	}
	ip, err := decodeAddress(out)
	if err != nil {
		return fmt.Errorf("multipass instance '%s': %w", alias, err)
	}
	slog.Debug("resolved multipass address", "alias", alias, "ip", ip)

	return l.writer.WriteHostBlock(HostBlock(alias, ip))
}

// HostBlock returns the ssh config block written for a Multipass instance reachable at ip.
func HostBlock(alias, ip string) sshhost.Block {
	return sshhost.Block{
		Alias:                 alias,
		Hostname:              ip,
		User:                  multipassUser,
		StrictHostKeyChecking: false,
		KnownHostsFile:        os.DevNull,
	}
}

func decodeAddress(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", ErrInvalidOutput
	}
	return strings.TrimSpace(string(out)), nil
}
