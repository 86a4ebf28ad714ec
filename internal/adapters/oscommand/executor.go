package oscommand

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface by spawning processes directly, without a shell.
type OSCommandExecutor struct {
	stdin  *os.File
	stdout *os.File
	stderr *os.File
}

// NewOSCommandExecutor creates a new OSCommandExecutor wired to the current process's standard streams.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run starts the program with inherited stdio and blocks until it exits.
func (e *OSCommandExecutor) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	slog.Debug("spawning command", "command", name, "args", args)
	return wait(name, args, cmd.Run())
}

// Output starts the program, captures its stdout and blocks until it exits.
// Whatever the child wrote is returned even when it exits with a non-zero status.
func (e *OSCommandExecutor) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var outBuf bytes.Buffer
	cmd.Stdin = e.stdin
	cmd.Stdout = &outBuf
	cmd.Stderr = e.stderr

	slog.Debug("spawning command for output", "command", name, "args", args)
	if err := wait(name, args, cmd.Run()); err != nil {
		return nil, err
	}
	return outBuf.Bytes(), nil
}

// wait filters the error of a finished command: exit statuses are logged and dropped,
// spawn and wait failures are returned.
func wait(name string, args []string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Debug("command exited with non-zero status", "command", name, "exit_code", exitErr.ExitCode())
		return nil
	}
	return fmt.Errorf("running '%s %s': %w", name, strings.Join(args, " "), err)
}
