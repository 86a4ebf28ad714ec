package testutil

import "errors"

// MockSSHConfigLocator is a mock implementation of ports.SSHConfigLocator.
type MockSSHConfigLocator struct {
	ConfigPathFunc func() (string, error)
}

func (m *MockSSHConfigLocator) ConfigPath() (string, error) {
	if m.ConfigPathFunc != nil {
		return m.ConfigPathFunc()
	}
	return "", errors.New("MockSSHConfigLocator: ConfigPathFunc not implemented")
}
