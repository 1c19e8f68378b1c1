package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".complexityscope"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for complexityscope settings.
const envPrefix = "COMPLEXITYSCOPE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load loads configuration from file, env vars, and defaults. If
// configPath is non-empty, it is used as the explicit config file path.
// Otherwise the config file is searched in CWD and $HOME. A missing
// config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		// Missing config files fall back to defaults; viper reports them
		// as ConfigFileNotFoundError when searching, and as a plain
		// fs.ErrNotExist when an explicit path was set.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) && !errors.Is(readErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	if schemaErr := ValidateSchema(viperCfg.AllSettings()); schemaErr != nil {
		return nil, fmt.Errorf("schema: %w", schemaErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("walker.forin", false)
	viperCfg.SetDefault("walker.logicalor", true)
	viperCfg.SetDefault("walker.newmi", false)
	viperCfg.SetDefault("walker.switchcase", true)
	viperCfg.SetDefault("walker.trycatch", false)

	viperCfg.SetDefault("project.skip_calculation", false)
	viperCfg.SetDefault("project.no_core_size", false)

	viperCfg.SetDefault("output.format", FormatTable)
	viperCfg.SetDefault("output.color", true)
}
