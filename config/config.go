// Package config loads the client's settings once at start-up: API and
// token parameters, where credentials live, and which environment is active.
//
// Priority: BBORACLE_* environment variables > config file > defaults.
// Without an explicit path the config file is looked up at
// $XDG_CONFIG_HOME/bboracle/config.yaml and may be absent.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/pietro-andreoli/bboracle/api"
	"github.com/pietro-andreoli/bboracle/auth"
	"github.com/pietro-andreoli/bboracle/logger"
	"github.com/pietro-andreoli/bboracle/rate"
)

const (
	AppName   = "bboracle"
	EnvPrefix = "BBORACLE"

	AuthModePassword = "password"
	AuthModeOAuth2   = "oauth2"

	StoreFile    = "file"
	StoreKeyring = "keyring"
)

type Config struct {
	// Environment overrides the environment file when set.
	Environment string            `mapstructure:"environment"`
	PathsFile   string            `mapstructure:"paths_file"`
	Paths       Paths             `mapstructure:"paths"`
	API         APIConfig         `mapstructure:"api"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Log         LogConfig         `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MinInterval time.Duration `mapstructure:"min_interval"`
}

type AuthConfig struct {
	Mode              string        `mapstructure:"mode"`
	URL               string        `mapstructure:"url"`
	ClientID          string        `mapstructure:"client_id"`
	ClientSecret      string        `mapstructure:"client_secret"`
	Scopes            []string      `mapstructure:"scopes"`
	TokenLifetime     time.Duration `mapstructure:"token_lifetime"`
	EarlyExpireOffset time.Duration `mapstructure:"early_expire_offset"`
}

type CredentialsConfig struct {
	Store          string `mapstructure:"store"`
	KeyringService string `mapstructure:"keyring_service"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "")
	v.SetDefault("paths_file", "")
	v.SetDefault("paths.credentials", filepath.Join(xdg.ConfigHome, AppName, "credentials.json"))
	v.SetDefault("paths.environment", "")

	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.min_interval", rate.DefaultMinInterval)

	v.SetDefault("auth.mode", AuthModePassword)
	v.SetDefault("auth.url", auth.DefaultAuthURL)
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.scopes", []string{})
	v.SetDefault("auth.token_lifetime", auth.DefaultLifetime)
	v.SetDefault("auth.early_expire_offset", auth.DefaultEarlyExpireOffset)

	v.SetDefault("credentials.store", StoreFile)
	v.SetDefault("credentials.keyring_service", AppName)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads the configuration. An explicit path must exist.
func Load(path string, log logger.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debugf("config: no config file found, using defaults")
	} else {
		log.Infof("config: using config file %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.PathsFile != "" {
		paths, err := ReadPathsFile(cfg.PathsFile, log)
		if err != nil {
			return nil, err
		}
		cfg.Paths.Credentials = paths.Credentials
		if paths.Environment != "" {
			cfg.Paths.Environment = paths.Environment
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case AuthModePassword, AuthModeOAuth2:
	default:
		return fmt.Errorf("unknown auth.mode %q", c.Auth.Mode)
	}
	if c.Auth.Mode == AuthModeOAuth2 && c.Auth.ClientID == "" {
		return fmt.Errorf("auth.client_id is required for oauth2")
	}
	switch c.Credentials.Store {
	case StoreFile, StoreKeyring:
	default:
		return fmt.Errorf("unknown credentials.store %q", c.Credentials.Store)
	}
	if c.API.MinInterval < 0 {
		return fmt.Errorf("api.min_interval must not be negative")
	}
	if c.Auth.TokenLifetime <= 0 {
		return fmt.Errorf("auth.token_lifetime must be positive")
	}
	if c.Auth.TokenLifetime+c.Auth.EarlyExpireOffset <= 0 {
		return fmt.Errorf("auth.early_expire_offset leaves no usable token lifetime")
	}
	if c.Environment != "" {
		if _, err := ParseEnvironment(c.Environment); err != nil {
			return err
		}
	}
	return nil
}

// ResolveEnvironment picks the explicit environment, then the environment
// file, and falls back to DEVELOPMENT.
func (c *Config) ResolveEnvironment(log logger.Logger) (Environment, error) {
	if c.Environment != "" {
		return ParseEnvironment(c.Environment)
	}
	if c.Paths.Environment != "" {
		return ReadEnvironmentFile(c.Paths.Environment, log)
	}
	return Development, nil
}

func (c *Config) NewCredentialSource(env Environment, log logger.Logger) auth.CredentialSource {
	if c.Credentials.Store == StoreKeyring {
		return NewKeyringCredentials(c.Credentials.KeyringService, env)
	}
	return NewFileCredentials(c.Paths.Credentials, env, log)
}

func (c *Config) NewExchanger(httpClient *http.Client) auth.Exchanger {
	if c.Auth.Mode == AuthModeOAuth2 {
		return auth.NewOAuth2Exchanger(
			c.Auth.ClientID, c.Auth.ClientSecret, c.Auth.URL, c.Auth.Scopes, httpClient,
		)
	}
	return auth.NewHTTPExchanger(c.Auth.URL, httpClient)
}

// NewProvider wires the configured credential store to the configured exchange.
func (c *Config) NewProvider(env Environment, httpClient *http.Client, log logger.Logger) *auth.Provider {
	return auth.NewProvider(
		c.NewCredentialSource(env, log),
		c.NewExchanger(httpClient),
	)
}

// DefaultLogFile is where the executable logs when log.file is "default".
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, "bboracle.log")
}
