package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every config key when read from the environment,
// e.g. ACERTIJO_LISTEN_ADDRESS.
const EnvPrefix = "ACERTIJO"

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the config, parses it, and initializes the global cfg variable.
// It ensures that the configuration is set only once.
func LoadConfig(args *CliConfig) (*Config, error) {
	var err error
	once.Do(func() {
		var configuration *Config
		configuration, err = Load(args.ConfigFile, args.flags)
		if err != nil {
			return
		}
		cfg = configuration
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

// Load builds a Config from defaults, the optional YAML file, ACERTIJO_*
// environment variables and the --listen flag, in increasing precedence.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("listen"); f != nil && f.Changed {
			if err := v.BindPFlag("listen_address", f); err != nil {
				return nil, fmt.Errorf("error binding flags: %w", err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&configuration); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("endpoint_path", "/api/get-puzzle")
	v.SetDefault("api_root", "https://generativelanguage.googleapis.com")
	v.SetDefault("model", "gemini-2.5-flash-preview-05-20")
	v.SetDefault("api_key_env", "GEMINI_API_KEY")
	v.SetDefault("upstream_timeout", "0s")
}
