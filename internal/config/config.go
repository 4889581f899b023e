package config

import (
	"strings"
	"sync"
	"time"

	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Ledger LedgerConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type LogConfig struct {
	// Level is empty unless LOG_LEVEL is set; the server mode decides then.
	Level string
}

type LedgerConfig struct {
	// TimeSlots are the row labels of the hourly grid. Their count is
	// fixed when the ledger is built.
	TimeSlots []string
}

type AppConfig struct {
	SeedFile  string
	TxTimeout time.Duration
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		instance = fromViper(viper.New())
	})

	return instance
}

func fromViper(v *viper.Viper) *Config {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("LEDGER_TIME_SLOTS", strings.Join(ledger.DefaultTimeSlots, ","))
	v.SetDefault("APP_SEED_FILE", "")
	v.SetDefault("APP_TX_TIMEOUT_SECONDS", 5)

	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Mode:           v.GetString("SERVER_MODE"),
			ReadTimeout:    v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetInt("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: v.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Ledger: LedgerConfig{
			TimeSlots: splitList(v.GetString("LEDGER_TIME_SLOTS")),
		},
		App: AppConfig{
			SeedFile:  strings.TrimSpace(v.GetString("APP_SEED_FILE")),
			TxTimeout: time.Duration(v.GetInt("APP_TX_TIMEOUT_SECONDS")) * time.Second,
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
