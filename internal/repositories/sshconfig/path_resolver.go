package sshconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/AntonioJCosta/vmssh/internal/core/ports"
)

// ErrEnvNotDefined is returned when a variable needed to locate the home directory is unset.
var ErrEnvNotDefined = errors.New("environment variable not defined")

// ErrConfigNotFound is returned when ~/.ssh/config is missing or is not a regular file.
var ErrConfigNotFound = errors.New("ssh config not found")

const (
	sshDirName        = ".ssh"
	sshConfigFileName = "config"
)

// PathResolver locates the user's ssh config from environment variables.
type PathResolver struct {
	goos      string
	lookupEnv func(key string) (string, bool)
}

// NewPathResolver creates a PathResolver for the running platform.
func NewPathResolver() ports.SSHConfigLocator {
	return &PathResolver{goos: runtime.GOOS, lookupEnv: os.LookupEnv}
}

// HomeDir returns the user's home directory.
// Windows prefers USERPROFILE and falls back to HOMEDRIVE followed by HOMEPATH; everything else uses HOME.
func (r *PathResolver) HomeDir() (string, error) {
	if r.goos != "windows" {
		return r.require("HOME")
	}

	if profile, ok := r.lookupEnv("USERPROFILE"); ok {
		return profile, nil
	}
	drive, err := r.require("HOMEDRIVE")
	if err != nil {
		return "", err
	}
	path, err := r.require("HOMEPATH")
	if err != nil {
		return "", err
	}
	return drive + path, nil
}

// ConfigPath implements the ports.SSHConfigLocator interface.
func (r *PathResolver) ConfigPath() (string, error) {
	home, err := r.HomeDir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(home, sshDirName, sshConfigFileName)
	info, err := os.Stat(configPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %q is not the correct path to the ssh config", ErrConfigNotFound, configPath)
	}
	return configPath, nil
}

func (r *PathResolver) require(key string) (string, error) {
	value, ok := r.lookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s not defined", ErrEnvNotDefined, key)
	}
	return value, nil
}
