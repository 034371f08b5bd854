package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultDatasetPath    = "processed_cricket_data.csv"
	DefaultDashboardTitle = "Cricket World Cup Dashboard"
	DefaultWebServerPort  = 8050
)

type Config struct {
	// WebServer Configuration
	WebServerPort int  `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	Debug         bool `mapstructure:"DEBUG"`

	// Dataset Configuration
	DatasetPath string `mapstructure:"DATASET_PATH" validate:"required"`

	// Page Configuration
	DashboardTitle string `mapstructure:"DASHBOARD_TITLE" validate:"required"`
	DashboardAbout string `mapstructure:"DASHBOARD_ABOUT"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", DefaultWebServerPort)
	viper.SetDefault("DATASET_PATH", DefaultDatasetPath)
	viper.SetDefault("DASHBOARD_TITLE", DefaultDashboardTitle)
	viper.SetDefault("DEBUG", false)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Info("Loaded configuration", "config", cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
