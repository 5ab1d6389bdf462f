package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type Config struct {
	ServiceName string

	Env            string
	LogLevel       string
	HTTPTimeout    int32
	TracingEnabled bool

	ApilayerAPIKey    string
	OpenWeatherAPIKey string
	NewsAPIKey        string

	CurrencyBase string

	Country string
	City    string
}

// LoadConfig reads .env, the environment and, when flags is not nil, the
// command line. Flags win over the environment.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "location-info")
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("CURRENCY_BASE", "RUB")
	v.SetDefault("COUNTRY", "Russia")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		TracingEnabled:    v.GetBool("TRACING_ENABLED"),
		ApilayerAPIKey:    v.GetString("API_KEY_APILAYER"),
		OpenWeatherAPIKey: v.GetString("API_KEY_OPENWEATHER"),
		NewsAPIKey:        v.GetString("API_KEY_NEWS"),
		CurrencyBase:      v.GetString("CURRENCY_BASE"),
		Country:           v.GetString("COUNTRY"),
		City:              v.GetString("CITY"),
	}

	return config, nil
}

// flag name -> config key
var flagKeys = map[string]string{
	"country":   "COUNTRY",
	"city":      "CITY",
	"log-level": "LOG_LEVEL",
	"timeout":   "HTTP_TIMEOUT",
	"tracing":   "TRACING_ENABLED",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate reports every missing API key at once.
func (c *Config) Validate() error {
	var missing []string
	if c.ApilayerAPIKey == "" {
		missing = append(missing, "API_KEY_APILAYER")
	}
	if c.OpenWeatherAPIKey == "" {
		missing = append(missing, "API_KEY_OPENWEATHER")
	}
	if c.NewsAPIKey == "" {
		missing = append(missing, "API_KEY_NEWS")
	}

	if len(missing) > 0 {
		return errors.New("missing configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
