// Package config loads iamcatalog settings from an optional YAML file and
// IAMCATALOG_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "IAMCATALOG"

// Settings holds the runtime configuration
type Settings struct {
	// Partition, Region and Account fill ARN templates when a caller does not
	// pass them. Account "auto" asks STS for the caller's account.
	Partition string `mapstructure:"partition"`
	Region    string `mapstructure:"region"`
	Account   string `mapstructure:"account"`

	// CatalogDir holds YAML service tables that replace or extend the embedded ones
	CatalogDir string `mapstructure:"catalog_dir"`

	// Output is where rendered documents go: "-", a file path, s3://, ssm:// or iam://
	Output string `mapstructure:"output"`

	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "json" for structured lines or "plain" for "[LEVEL] message"
	LogFormat string `mapstructure:"log_format"`
}

// AccountFromSTS is the Account value that asks STS for the caller's account
const AccountFromSTS = "auto"

const (
	LogFormatJSON  = "json"
	LogFormatPlain = "plain"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("partition", "aws")
	v.SetDefault("region", "*")
	v.SetDefault("account", "*")
	v.SetDefault("catalog_dir", "")
	v.SetDefault("output", "-")
	v.SetDefault("log_level", string(logging.LogLevelWarn))
	v.SetDefault("log_format", LogFormatJSON)
}

// Load reads configuration from configPath (if it exists) and the environment.
// Environment variables win over the file.
func Load(configPath string) (*Settings, error) {
	return LoadWith(viper.New(), configPath)
}

// LoadWith is Load on a caller-supplied viper instance, so flags bound to it
// take part in resolution
func LoadWith(v *viper.Viper, configPath string) (*Settings, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			logging.LogDebug("Loaded config file", map[string]interface{}{"file": v.ConfigFileUsed()})
		} else {
			logging.LogWarn(fmt.Sprintf("Config file not found: %s, using environment variables and defaults", configPath))
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate rejects settings that cannot produce valid ARNs
func (s *Settings) Validate() error {
	if s.Partition == "" {
		return fmt.Errorf("partition must not be empty")
	}
	if strings.Contains(s.Partition, ":") || strings.Contains(s.Region, ":") || strings.Contains(s.Account, ":") {
		return fmt.Errorf("partition, region and account must not contain ':'")
	}
	if _, err := logging.ParseLogLevel(s.LogLevel); err != nil {
		return err
	}
	if s.LogFormat != LogFormatJSON && s.LogFormat != LogFormatPlain {
		return fmt.Errorf("unknown log format %q (want %s or %s)", s.LogFormat, LogFormatJSON, LogFormatPlain)
	}
	return nil
}

// NeedsAccountLookup reports whether the account must be fetched from STS
func (s *Settings) NeedsAccountLookup() bool {
	return strings.EqualFold(s.Account, AccountFromSTS)
}

// Resolver returns the ARN resolver described by the settings. account
// replaces an "auto" Account setting.
func (s *Settings) Resolver(account string) arn.Resolver {
	r := arn.Resolver{Partition: s.Partition, Region: s.Region, Account: s.Account}
	if s.NeedsAccountLookup() {
		r.Account = account
	}
	if r.Region == "" {
		r.Region = "*"
	}
	if r.Account == "" {
		r.Account = "*"
	}
	return r
}
