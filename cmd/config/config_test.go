package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	defer viper.Reset()

	viper.Set("api.subsystems.http.addr", "127.0.0.1:8123")
	viper.Set("api.subsystems.http.timeout", "5s")
	viper.Set("metrics.port", 9999)
	viper.Set("log.level", "debug")

	config, err := New()
	assert.Nil(t, err)

	assert.Equal(t, "127.0.0.1:8123", config.API.Subsystems.Http.Addr)
	assert.Equal(t, 5*time.Second, config.API.Subsystems.Http.Timeout)
	assert.Equal(t, 9999, config.Metrics.Port)
	assert.Equal(t, "debug", config.Log.Level)
}
