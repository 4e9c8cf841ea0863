package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/pietro-andreoli/bboracle/auth"
	"github.com/pietro-andreoli/bboracle/logger"
)

// FileCredentials reads credentials from a JSON or YAML file keyed by environment:
//
//	{"PRODUCTION": {"username": "...", "password": "..."}, "DEVELOPMENT": {...}}
type FileCredentials struct {
	path   string
	env    Environment
	logger logger.Logger
}

var _ auth.CredentialSource = &FileCredentials{}

func NewFileCredentials(path string, env Environment, log logger.Logger) *FileCredentials {
	return &FileCredentials{
		path:   path,
		env:    env,
		logger: log,
	}
}

func (f *FileCredentials) Credentials(_ context.Context) (auth.Credentials, error) {
	f.logger.Infof("config: reading the credentials file at %s", f.path)

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Errorf("config: could not read the credentials file: %v", err)
		return auth.Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var all map[string]auth.Credentials
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &all)
	default:
		err = json.Unmarshal(data, &all)
	}
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	creds, ok := all[string(f.env)]
	if !ok {
		return auth.Credentials{}, fmt.Errorf("credentials file %s has no %s entry", f.path, f.env)
	}
	if !creds.Loaded() {
		return auth.Credentials{}, fmt.Errorf("credentials for %s are incomplete", f.env)
	}
	f.logger.Infof("config: credentials file successfully read")
	return creds, nil
}

// KeyringCredentials keeps credentials in the OS keyring, one entry per environment.
type KeyringCredentials struct {
	service string
	env     Environment
}

var _ auth.CredentialSource = &KeyringCredentials{}

func NewKeyringCredentials(service string, env Environment) *KeyringCredentials {
	if service == "" {
		service = AppName
	}
	return &KeyringCredentials{
		service: service,
		env:     env,
	}
}

func (k *KeyringCredentials) Credentials(_ context.Context) (auth.Credentials, error) {
	data, err := keyring.Get(k.service, string(k.env))
	if err != nil {
		if err == keyring.ErrNotFound {
			return auth.Credentials{}, fmt.Errorf("no %s credentials in keyring, run login first", k.env)
		}
		return auth.Credentials{}, fmt.Errorf("failed to retrieve credentials from keyring: %w", err)
	}

	var creds auth.Credentials
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return creds, nil
}

func (k *KeyringCredentials) Save(creds auth.Credentials) error {
	if !creds.Loaded() {
		return fmt.Errorf("username and password are required")
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := keyring.Set(k.service, string(k.env), string(data)); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (k *KeyringCredentials) Delete() error {
	if err := keyring.Delete(k.service, string(k.env)); err != nil {
		if err == keyring.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}
