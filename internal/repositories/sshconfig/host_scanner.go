package sshconfig

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

const hostKeyword = "Host "

// HostScanner reads `Host` declarations out of an ssh config file.
type HostScanner struct {
	configPath string
}

// NewHostScanner creates a HostScanner for the given ssh config file.
func NewHostScanner(configPath string) ports.HostScanner {
	return &HostScanner{configPath: configPath}
}

// DefinedHosts implements the ports.HostScanner interface.
func (s *HostScanner) DefinedHosts() ([]string, error) {
	content, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ssh config %s: %w", toUserFriendlyPath(s.configPath), err)
	}
	return parseHostLines(string(content)), nil
}

// parseHostLines keeps whatever follows "Host " on each line, untouched.
// A declaration listing several patterns is therefore returned as one entry.
func parseHostLines(content string) []string {
	hosts := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		name, found := strings.CutPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), hostKeyword)
		if found {
			hosts = append(hosts, name)
		}
	}
	return hosts
}

// ReferencesInclude reports whether the ssh config has an Include directive mentioning fileName.
func ReferencesInclude(configPath, fileName string) (bool, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return false, fmt.Errorf("failed to read ssh config %s: %w", toUserFriendlyPath(configPath), err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.EqualFold(fields[0], "Include") {
			continue
		}
		for _, target := range fields[1:] {
			if strings.HasSuffix(target, fileName) {
				return true, nil
			}
		}
	}
	return false, nil
}
