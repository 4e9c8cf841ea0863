package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pietro-andreoli/bboracle/logger"
)

// Environment selects which set of credentials is used.
type Environment string

const (
	Production  Environment = "PRODUCTION"
	Development Environment = "DEVELOPMENT"
)

func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToUpper(strings.TrimSpace(s))); env {
	case Production, Development:
		return env, nil
	}
	return "", fmt.Errorf("unknown environment %q, expected %s or %s", s, Production, Development)
}

// ReadEnvironmentFile reads an environment name from a plain text file.
func ReadEnvironmentFile(path string, log logger.Logger) (Environment, error) {
	log.Infof("config: reading the environment file at %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("config: could not read the environment file: %v", err)
		return "", fmt.Errorf("failed to read environment file: %w", err)
	}
	env, err := ParseEnvironment(string(data))
	if err != nil {
		return "", fmt.Errorf("invalid environment file %s: %w", path, err)
	}
	log.Infof("config: environment initialized as %s", env)
	return env, nil
}
