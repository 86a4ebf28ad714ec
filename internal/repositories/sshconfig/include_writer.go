package sshconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/vmssh/internal/core/domain/sshhost"
	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// IncludeFileName is the generated file placed next to the ssh config.
const IncludeFileName = "multipassvm.conf"

// IncludeWriter writes generated host blocks into a file beside the ssh config.
type IncludeWriter struct {
	includeFilePath string
}

// NewIncludeWriter creates a writer for the include file that sits next to sshConfigPath.
func NewIncludeWriter(sshConfigPath string) ports.HostConfigWriter {
	return &IncludeWriter{
		includeFilePath: filepath.Join(filepath.Dir(sshConfigPath), IncludeFileName),
	}
}

// WriteHostBlock implements the ports.HostConfigWriter interface.
// Previous content is discarded; the file only ever holds the latest block.
func (w *IncludeWriter) WriteHostBlock(block sshhost.Block) error {
	if err := os.WriteFile(w.includeFilePath, []byte(block.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write generated ssh config %s: %w", toUserFriendlyPath(w.includeFilePath), err)
	}
	slog.Debug("wrote generated ssh config", "path", w.includeFilePath, "host", block.Alias)
	return nil
}

// Path implements the ports.HostConfigWriter interface.
func (w *IncludeWriter) Path() string {
	return w.includeFilePath
}
