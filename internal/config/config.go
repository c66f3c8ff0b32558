package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DataConfig struct {
	TobaccoPath   string
	MortalityPath string
}

type DashboardConfig struct {
	// ForecastHorizon is the number of years projected past the last
	// historical year on time-series endpoints.
	ForecastHorizon int
	// TopN is the default ranking size.
	TopN int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DATA_TOBACCO_PATH", "./data/rep_gho_tobacco/data.xlsx")
	v.SetDefault("DATA_MORTALITY_PATH", "./data/rep_ihme_inc/data.xlsx")
	v.SetDefault("DASHBOARD_FORECAST_HORIZON", 5)
	v.SetDefault("DASHBOARD_TOP_N", 5)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Data: DataConfig{
			TobaccoPath:   v.GetString("DATA_TOBACCO_PATH"),
			MortalityPath: v.GetString("DATA_MORTALITY_PATH"),
		},
		Dashboard: DashboardConfig{
			ForecastHorizon: v.GetInt("DASHBOARD_FORECAST_HORIZON"),
			TopN:            v.GetInt("DASHBOARD_TOP_N"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
