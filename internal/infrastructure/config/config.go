// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/barkeep/v1/internal/application/menu"
	"github.com/barkeep/v1/pkg/units"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Recipes  RecipesConfig  `mapstructure:"recipes"`
	Bar      BarSettings    `mapstructure:"bar"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableMetrics   bool          `mapstructure:"enable_metrics"`
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	Path               string        `mapstructure:"path"`
	MaxOpenConns       int           `mapstructure:"max_open_conns"`
	LogLevel           string        `mapstructure:"log_level"`
	SlowQueryThreshold time.Duration `mapstructure:"slow_query_threshold"`
	AutoMigrate        bool          `mapstructure:"auto_migrate"`
}

// RecipesConfig locates the recipe library
type RecipesConfig struct {
	Path string `mapstructure:"path"`
}

// BarSettings contains the per-bar presentation and pricing settings
type BarSettings struct {
	ID          int     `mapstructure:"id"`
	Name        string  `mapstructure:"name"`
	Tagline     string  `mapstructure:"tagline"`
	Markup      float64 `mapstructure:"markup"`
	MarkupModel string  `mapstructure:"markup_model"`
	DefaultUnit string  `mapstructure:"default_unit"`
	ShowPrices  bool    `mapstructure:"show_prices"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/barkeep")
	}

	v.SetEnvPrefix("BARKEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Barkeep")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.enable_metrics", true)

	// Database defaults
	v.SetDefault("database.path", "barkeep.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.slow_query_threshold", "100ms")
	v.SetDefault("database.auto_migrate", true)

	// Recipe library defaults
	v.SetDefault("recipes.path", "recipes.json")

	// Bar defaults
	v.SetDefault("bar.id", 1)
	v.SetDefault("bar.name", "Barkeep")
	v.SetDefault("bar.markup", 3)
	v.SetDefault("bar.markup_model", "multiplicative")
	v.SetDefault("bar.default_unit", "oz")
	v.SetDefault("bar.show_prices", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Recipes.Path == "" {
		return fmt.Errorf("recipes.path is required")
	}
	if !menu.MarkupModel(c.Bar.MarkupModel).Valid() {
		return fmt.Errorf("bar.markup_model must be %q or %q",
			menu.MarkupMultiplicative, menu.MarkupAdditive)
	}
	if c.Bar.Markup <= 0 {
		return fmt.Errorf("bar.markup must be positive")
	}
	if !units.IsVolume(units.Unit(c.Bar.DefaultUnit)) {
		return fmt.Errorf("bar.default_unit must be a volume unit (oz, mL, cL)")
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// BarConfig converts the raw settings into the menu engine's typed form
func (c *Config) BarConfig() menu.BarConfig {
	return menu.BarConfig{
		BarID:       c.Bar.ID,
		Name:        c.Bar.Name,
		Tagline:     c.Bar.Tagline,
		Markup:      c.Bar.Markup,
		MarkupModel: menu.MarkupModel(c.Bar.MarkupModel),
		DefaultUnit: units.Unit(c.Bar.DefaultUnit),
		ShowPrices:  c.Bar.ShowPrices,
	}
}
