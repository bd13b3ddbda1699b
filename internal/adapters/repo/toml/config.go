package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".condorlimits"
	envPrefix  = "CONDORLIMITS"

	PoolKey               = "negotiator.pool"
	MaxAgeKey             = "negotiator.max_age"
	QueryTimeoutKey       = "negotiator.query_timeout"
	ReconfigureTimeoutKey = "negotiator.reconfigure_timeout"
	UserprioBinaryKey     = "negotiator.userprio_binary"
	ConfigValBinaryKey    = "negotiator.config_val_binary"
	LogLevelKey           = "log.level"
	LogFormatKey          = "log.format"
)

type Config struct {
	Pool               string
	MaxAge             time.Duration
	QueryTimeout       time.Duration
	ReconfigureTimeout time.Duration
	UserprioBinary     string
	ConfigValBinary    string
	LogLevel           string
	LogFormat          string
}

// LoadConfig reads $HOME/.condorlimits/config.toml unless the caller already
// pointed cfg at a file. CONDORLIMITS_* variables override file values.
func LoadConfig(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(PoolKey, "")
	cfg.SetDefault(MaxAgeKey, "30s")
	cfg.SetDefault(QueryTimeoutKey, "30s")
	cfg.SetDefault(ReconfigureTimeoutKey, "10s")
	cfg.SetDefault(UserprioBinaryKey, "condor_userprio")
	cfg.SetDefault(ConfigValBinaryKey, "condor_config_val")
	cfg.SetDefault(LogLevelKey, "info")
	cfg.SetDefault(LogFormatKey, "console")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	explicit := cfg.ConfigFileUsed() != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	config := Config{
		Pool:               strings.TrimSpace(cfg.GetString(PoolKey)),
		MaxAge:             cfg.GetDuration(MaxAgeKey),
		QueryTimeout:       cfg.GetDuration(QueryTimeoutKey),
		ReconfigureTimeout: cfg.GetDuration(ReconfigureTimeoutKey),
		UserprioBinary:     strings.TrimSpace(cfg.GetString(UserprioBinaryKey)),
		ConfigValBinary:    strings.TrimSpace(cfg.GetString(ConfigValBinaryKey)),
		LogLevel:           cfg.GetString(LogLevelKey),
		LogFormat:          cfg.GetString(LogFormatKey),
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.MaxAge <= 0 {
		return fmt.Errorf("%s must be positive, got %s", MaxAgeKey, c.MaxAge)
	}
	if c.QueryTimeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", QueryTimeoutKey, c.QueryTimeout)
	}
	if c.ReconfigureTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", ReconfigureTimeoutKey, c.ReconfigureTimeout)
	}
	if c.UserprioBinary == "" {
		return fmt.Errorf("%s is empty", UserprioBinaryKey)
	}
	if c.ConfigValBinary == "" {
		return fmt.Errorf("%s is empty", ConfigValBinaryKey)
	}

	return nil
}
