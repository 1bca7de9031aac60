package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rinkside/rinkside/internal/model"
)

// cliConfig holds the dashboard configuration.
type cliConfig struct {
	Skin     string `mapstructure:"skin"`
	Wrap     bool   `mapstructure:"wrap"`
	Snapshot string `mapstructure:"snapshot"`
}

func loadConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("RINKSIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("wrap", model.DefaultWrap)
	v.SetDefault("snapshot", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir(), "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// configDir is where the config file and skins live.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "rinkside")
}
