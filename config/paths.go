package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pietro-andreoli/bboracle/logger"
)

// Paths locates the files the client reads at start-up.
type Paths struct {
	Credentials string `mapstructure:"credentials"`
	Environment string `mapstructure:"environment"`
}

// ReadPathsFile reads a paths file with API_CREDENTIALS and ENVIRONMENT keys.
// JSON and YAML are both accepted.
func ReadPathsFile(path string, log logger.Logger) (Paths, error) {
	log.Infof("config: reading the paths file at %s", path)

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Errorf("config: could not read the paths file: %v", err)
		return Paths{}, fmt.Errorf("failed to read paths file: %w", err)
	}

	paths := Paths{
		Credentials: v.GetString("API_CREDENTIALS"),
		Environment: v.GetString("ENVIRONMENT"),
	}
	if paths.Credentials == "" {
		return Paths{}, fmt.Errorf("paths file %s has no API_CREDENTIALS entry", path)
	}
	log.Infof("config: paths file successfully read")
	return paths, nil
}
