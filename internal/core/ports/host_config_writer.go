package ports

import "github.com/AntonioJCosta/vmssh/internal/core/domain/sshhost"

/*
HostConfigWriter persists a generated ssh config block.
This is a driven port implemented by the sshconfig repository.
*/
type HostConfigWriter interface {
	// WriteHostBlock replaces the generated file's content with block.
	WriteHostBlock(block sshhost.Block) error

	// Path returns the absolute path of the generated file.
	Path() string
}
