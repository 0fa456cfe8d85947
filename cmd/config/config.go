package config

import (
	"github.com/bingohq/rng/internal/app/subsystems/api/http"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type Config struct {
	API     *APIConfig
	Metrics *MetricsConfig
	Log     *LogConfig
}

type APIConfig struct {
	Subsystems *APISubsystems
}

type APISubsystems struct {
	Http *http.Config
}

type MetricsConfig struct {
	Port int
}

type LogConfig struct {
	Level string
}

func New() (*Config, error) {
	var config *Config

	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	if err := viper.Unmarshal(&config, viper.DecodeHook(hooks)); err != nil {
		return nil, err
	}

	return config, nil
}
