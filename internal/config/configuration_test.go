package config

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 8050, cfg.WebServerPort)
	require.Equal(t, "processed_cricket_data.csv", cfg.DatasetPath)
	require.Equal(t, "Cricket World Cup Dashboard", cfg.DashboardTitle)
	require.Empty(t, cfg.DashboardAbout)
	require.False(t, cfg.Debug)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("WEBSERVER_PORT", "8080")
	t.Setenv("DATASET_PATH", "/data/matches.csv")
	t.Setenv("DASHBOARD_TITLE", "World Cup 2023")
	t.Setenv("DASHBOARD_ABOUT", "Figures from **every** match.")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 8080, cfg.WebServerPort)
	require.Equal(t, "/data/matches.csv", cfg.DatasetPath)
	require.Equal(t, "World Cup 2023", cfg.DashboardTitle)
	require.Equal(t, "Figures from **every** match.", cfg.DashboardAbout)
	require.True(t, cfg.Debug)
}

func TestLoadConfig_ValidationError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("WEBSERVER_PORT", "70000")

	cfg, err := LoadConfig(context.Background())
	require.Error(t, err)
	require.Nil(t, cfg)
}
