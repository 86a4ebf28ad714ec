package ports

// SSHConfigLocator resolves the user's ssh config file.
type SSHConfigLocator interface {
	// ConfigPath returns the path of ~/.ssh/config, failing if it is not a regular file.
	ConfigPath() (string, error)
}
