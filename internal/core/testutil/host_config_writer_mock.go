package testutil

import (
	"errors"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/sshhost"
)

// MockHostConfigWriter is a mock implementation of ports.HostConfigWriter.
type MockHostConfigWriter struct {
	WriteHostBlockFunc func(block sshhost.Block) error
	PathValue          string
	Written            []sshhost.Block
}

func (m *MockHostConfigWriter) WriteHostBlock(block sshhost.Block) error {
	m.Written = append(m.Written, block)
	if m.WriteHostBlockFunc != nil {
		return m.WriteHostBlockFunc(block)
	}
	return errors.New("MockHostConfigWriter: WriteHostBlockFunc not implemented")
}

func (m *MockHostConfigWriter) Path() string {
	return m.PathValue
}
