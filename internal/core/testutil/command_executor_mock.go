package testutil

import (
	"errors"
	"strings"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Every invocation is recorded in Calls as "name arg1 arg2 ...".
type MockCommandExecutor struct {
	RunFunc    func(name string, args ...string) error
	OutputFunc func(name string, args ...string) ([]byte, error)
	Calls      []string
}

// Run calls the mock RunFunc.
func (m *MockCommandExecutor) Run(name string, args ...string) error {
	m.record(name, args)
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return errors.New("MockCommandExecutor.RunFunc not implemented")
}

// Output calls the mock OutputFunc.
func (m *MockCommandExecutor) Output(name string, args ...string) ([]byte, error) {
	m.record(name, args)
	if m.OutputFunc != nil {
		return m.OutputFunc(name, args...)
	}
	return nil, errors.New("MockCommandExecutor.OutputFunc not implemented")
}

func (m *MockCommandExecutor) record(name string, args []string) {
	m.Calls = append(m.Calls, strings.Join(append([]string{name}, args...), " "))
}
