package config

import "time"

// Config holds the application configuration. The upstream credential is
// not part of it; only the name of the variable that carries it.
type Config struct {
	ListenAddress   string        `mapstructure:"listen_address" validate:"required,hostname_port"`
	EndpointPath    string        `mapstructure:"endpoint_path" validate:"required,startswith=/"`
	APIRoot         string        `mapstructure:"api_root" validate:"required,http_url"`
	Model           string        `mapstructure:"model" validate:"required"`
	APIKeyEnv       string        `mapstructure:"api_key_env" validate:"required"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout" validate:"gte=0"`
}
