package testutil

import "errors"

// MockMachineLauncher is a mock implementation of ports.MachineLauncher.
type MockMachineLauncher struct {
	LaunchFunc func(alias string) error
	Launched   []string
}

func (m *MockMachineLauncher) Launch(alias string) error {
	m.Launched = append(m.Launched, alias)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(alias)
	}
	return errors.New("MockMachineLauncher: LaunchFunc not implemented")
}

// MockSSHLauncher is a mock implementation of ports.SSHLauncher.
type MockSSHLauncher struct {
	LaunchFunc func(args []string) error
	Calls      [][]string
}

func (m *MockSSHLauncher) Launch(args []string) error {
	m.Calls = append(m.Calls, args)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(args)
	}
	return errors.New("MockSSHLauncher: LaunchFunc not implemented")
}
