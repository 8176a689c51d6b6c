package config

import (
	"fmt"
	"strings"
	"time"

	"auction-sync/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the runtime configuration of the client core
type Config struct {
	Port            string
	LogLevel        string
	BackendURL      string // empty selects the in-memory backend
	PushURL         string // empty disables the push channel
	SessionToken    string
	DemoUserID      string
	FundingURL      string
	HistoryURL      string
	NotificationCap int
	FlagClearDelay  time.Duration
	AlertsEnabled   bool
	RequestTimeout  time.Duration
}

// Addr returns the listen address for the local API
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_URL", "")
	v.SetDefault("PUSH_URL", "")
	v.SetDefault("SESSION_TOKEN", "")
	v.SetDefault("DEMO_USER_ID", "demo-user")
	v.SetDefault("FUNDING_URL", "/wallet/charge")
	v.SetDefault("HISTORY_URL", "/mypage/transactions")
	v.SetDefault("NOTIFICATION_CAP", 50)
	v.SetDefault("FLAG_CLEAR_DELAY", "3s")
	v.SetDefault("ALERTS_ENABLED", true)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
}

// Load reads configuration from the environment, an optional .env file and an
// optional config file at path (yaml/toml/json, by extension).
func Load(path string) *Config {
	if err := godotenv.Load(); err != nil {
		utils.Debug("no .env file found, using environment variables", nil)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			utils.Warn("config file not loaded", map[string]any{"path": path, "error": err.Error()})
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	notifCap := v.GetInt("NOTIFICATION_CAP")
	if notifCap <= 0 {
		notifCap = 50
	}
	return &Config{
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		BackendURL:      strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		PushURL:         v.GetString("PUSH_URL"),
		SessionToken:    v.GetString("SESSION_TOKEN"),
		DemoUserID:      v.GetString("DEMO_USER_ID"),
		FundingURL:      v.GetString("FUNDING_URL"),
		HistoryURL:      v.GetString("HISTORY_URL"),
		NotificationCap: notifCap,
		FlagClearDelay:  v.GetDuration("FLAG_CLEAR_DELAY"),
		AlertsEnabled:   v.GetBool("ALERTS_ENABLED"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
	}
}
