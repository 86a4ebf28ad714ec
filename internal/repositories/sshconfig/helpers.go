package sshconfig

import (
	"os"
	"path/filepath"
	"strings"
)

func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if strings.HasPrefix(absPath, homeDir) {
		if absPath == homeDir {
			return "~"
		}
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
