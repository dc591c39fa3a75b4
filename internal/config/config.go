package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultMaxRows             = 15
	defaultCommitLimit         = 100
	defaultBranchAction        = "checkout"
	defaultRecentBranchesFirst = true
)

type Config struct {
	MaxRows             int    `mapstructure:"max_rows"`
	CommitLimit         int    `mapstructure:"commit_limit"`
	DefaultBranchAction string `mapstructure:"default_branch_action"`
	RecentBranchesFirst bool   `mapstructure:"recent_branches_first"`
}

func defaultConfig() *Config {
	return &Config{
		MaxRows:             defaultMaxRows,
		CommitLimit:         defaultCommitLimit,
		DefaultBranchAction: defaultBranchAction,
		RecentBranchesFirst: defaultRecentBranchesFirst,
	}
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "refpick"))
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "refpick"))
	v.SetConfigType("yaml")

	v.SetDefault("max_rows", defaultMaxRows)
	v.SetDefault("commit_limit", defaultCommitLimit)
	v.SetDefault("default_branch_action", defaultBranchAction)
	v.SetDefault("recent_branches_first", defaultRecentBranchesFirst)

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// fallback to TOML if yaml missing
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return cfg, nil
}
