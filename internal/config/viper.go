package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"input" yaml:"input"`

	Filter struct {
		Region    string `mapstructure:"region" yaml:"region"`
		MinAmount string `mapstructure:"min_amount" yaml:"min_amount"`
		MaxAmount string `mapstructure:"max_amount" yaml:"max_amount"`
	} `mapstructure:"filter" yaml:"filter"`

	Analytics struct {
		TopProducts          int `mapstructure:"top_products" yaml:"top_products"`
		LowQuantityThreshold int `mapstructure:"low_quantity_threshold" yaml:"low_quantity_threshold"`
	} `mapstructure:"analytics" yaml:"analytics"`

	API struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		PageLimit      int    `mapstructure:"page_limit" yaml:"page_limit"`
	} `mapstructure:"api" yaml:"api"`

	Catalog struct {
		CacheFile string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Enriched struct {
		OutputFile string `mapstructure:"output_file" yaml:"output_file"`
	} `mapstructure:"enriched" yaml:"enriched"`

	Report struct {
		OutputFile     string `mapstructure:"output_file" yaml:"output_file"`
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SALES_-prefixed env vars.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sales-analytics")
	v.AddConfigPath(".sales-analytics")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.delimiter", "|")

	v.SetDefault("filter.region", "")
	v.SetDefault("filter.min_amount", "")
	v.SetDefault("filter.max_amount", "")

	v.SetDefault("analytics.top_products", 5)
	v.SetDefault("analytics.low_quantity_threshold", 10)

	v.SetDefault("api.base_url", "https://dummyjson.com")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("api.page_limit", 100)

	v.SetDefault("catalog.cache_file", "data/product_catalog.yaml")
	v.SetDefault("enriched.output_file", "data/enriched_sales_data.txt")

	v.SetDefault("report.output_file", "output/sales_report.txt")
	v.SetDefault("report.currency_symbol", "₹")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.Input.Delimiter)) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got: %s", config.Input.Delimiter)
	}

	if config.Analytics.TopProducts < 1 {
		return fmt.Errorf("analytics.top_products must be at least 1, got: %d", config.Analytics.TopProducts)
	}

	if config.Analytics.LowQuantityThreshold < 1 {
		return fmt.Errorf("analytics.low_quantity_threshold must be at least 1, got: %d", config.Analytics.LowQuantityThreshold)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if config.API.PageLimit < 1 {
		return fmt.Errorf("api.page_limit must be at least 1, got: %d", config.API.PageLimit)
	}

	return nil
}
