package config

import "github.com/spf13/viper"

// Config holds runtime settings that are not part of the .net input.
type Config struct {
	LogLevel   string
	PlotWidth  float64 // inches
	PlotHeight float64 // inches
}

// Load reads settings from the environment with baked-in defaults.
// Variables use the CASCADE_ prefix, e.g. CASCADE_LOG_LEVEL=debug.
func Load() *Config {
	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PLOT_WIDTH", 8.0)
	v.SetDefault("PLOT_HEIGHT", 5.0)

	v.SetEnvPrefix("CASCADE")
	v.AutomaticEnv()

	return &Config{
		LogLevel:   v.GetString("LOG_LEVEL"),
		PlotWidth:  v.GetFloat64("PLOT_WIDTH"),
		PlotHeight: v.GetFloat64("PLOT_HEIGHT"),
	}
}
