package config

import (
	"testing"
	"time"

	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Log.Level)
	assert.Equal(t, ledger.DefaultTimeSlots, cfg.Ledger.TimeSlots)
	assert.Empty(t, cfg.App.SeedFile)
	assert.Equal(t, 5*time.Second, cfg.App.TxTimeout)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LEDGER_TIME_SLOTS", " 07:00 - 08:00 ,08:00 - 09:00,, ")
	t.Setenv("APP_SEED_FILE", "fixtures/floor.json")
	t.Setenv("APP_TX_TIMEOUT_SECONDS", "2")

	cfg := fromViper(viper.New())

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"07:00 - 08:00", "08:00 - 09:00"}, cfg.Ledger.TimeSlots)
	assert.Equal(t, "fixtures/floor.json", cfg.App.SeedFile)
	assert.Equal(t, 2*time.Second, cfg.App.TxTimeout)
}
