package ports

// SSHLauncher runs the system ssh client with the given arguments and waits for it.
type SSHLauncher interface {
	Launch(args []string) error
}
