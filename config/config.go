package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Google API access
	Google GoogleConfig

	// Planning behavior
	Scheduler SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig covers both the Calendar (read) and Tasks (write) APIs,
// which share one service-account credentials file.
type GoogleConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type SchedulerConfig struct {
	HorizonDays     int
	ListTitle       string
	DueHour         int
	WriteWorkers    int
	WritesPerSecond float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google APIs
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}
	if calendarID := viper.GetString("google_calendar_id"); calendarID != "" {
		cfg.Google.CalendarID = calendarID
	}

	// Scheduler
	cfg.Scheduler.HorizonDays = viper.GetInt("scheduler.horizon_days")
	cfg.Scheduler.ListTitle = viper.GetString("scheduler.list_title")
	cfg.Scheduler.DueHour = viper.GetInt("scheduler.due_hour")
	cfg.Scheduler.WriteWorkers = viper.GetInt("scheduler.write_workers")
	cfg.Scheduler.WritesPerSecond = viper.GetFloat64("scheduler.writes_per_second")

	// CalendarID always carries the "primary" default; only the
	// credentials path has no sensible fallback.
	if cfg.Google.CredentialsPath == "" {
		return nil, fmt.Errorf("google.credentials_path is required - set it in config.yaml or GOOGLE_CREDENTIALS")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.timezone", "UTC")
	viper.SetDefault("scheduler.horizon_days", 7)
	viper.SetDefault("scheduler.list_title", "AI hackathon Tasks")
	viper.SetDefault("scheduler.due_hour", 17)
	viper.SetDefault("scheduler.write_workers", 4)
	viper.SetDefault("scheduler.writes_per_second", 0)
}
