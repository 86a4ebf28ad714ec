package testutil

import (
	"errors"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/vm"
)

// MockConnectService is a mock implementation of ports.ConnectService.
type MockConnectService struct {
	ConnectFunc func(args []string) error
	MatchFunc   func(args []string) (vm.Machine, bool)
}

func (m *MockConnectService) Connect(args []string) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(args)
	}
	return errors.New("MockConnectService: ConnectFunc not implemented")
}

func (m *MockConnectService) Match(args []string) (vm.Machine, bool) {
	if m.MatchFunc != nil {
		return m.MatchFunc(args)
	}
	return vm.Machine{}, false
}
