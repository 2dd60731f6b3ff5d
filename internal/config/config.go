package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName               = "linear-tui"
	defaultAPIURL         = "https://api.linear.app/graphql"
	defaultRequestTimeout = 30 * time.Second
)

var ErrMissingAPIKey = errors.New("no API key: pass --api-key or set LINEAR_API_KEY")

type Config struct {
	APIKey         string        `mapstructure:"api_key"`
	APIURL         string        `mapstructure:"api_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogFile        string        `mapstructure:"log_file"`
	Debug          bool          `mapstructure:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
	}
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"api-key":  "api_key",
	"api-url":  "api_url",
	"log-file": "log_file",
	"debug":    "debug",
}

// Load resolves the configuration. Precedence, highest first: flags that were
// set, LINEAR_* environment variables, the config file, defaults. An explicit
// path must exist; the default search locations are optional.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", appName))
	}

	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)

	if err := v.BindEnv("api_key", "LINEAR_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("api_url", "LINEAR_API_URL"); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// LogPath is where the runtime log is written while the terminal is owned by
// the UI.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appName, appName+".log")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", appName, appName+".log")
}
