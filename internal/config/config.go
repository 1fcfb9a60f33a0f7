package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ShellConfig holds the jaslet-shell settings loadable from a yaml file.
type ShellConfig struct {
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Shell struct {
		Prompt      string `mapstructure:"prompt"`
		HistoryPath string `mapstructure:"history_path"`
		HistoryMax  int    `mapstructure:"history_max"`
	} `mapstructure:"shell"`
}

// Load reads a yaml config file from path.
func Load(path string) (*ShellConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("shell.prompt", "jaslet> ")
	v.SetDefault("shell.history_max", 2000)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ShellConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
