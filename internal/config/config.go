// Package config loads the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config is the main application configuration.
type Config struct {
	Server  *ServerConfig  `yaml:"server"  json:"server"`
	Logging *LoggingConfig `yaml:"logging" json:"logging"`
}

// ServerConfig is the HTTP server configuration.
type ServerConfig struct {
	Host            string        `yaml:"host"             json:"host"`
	Port            int           `yaml:"port"             json:"port"`
	Greeting        string        `yaml:"greeting"         json:"greeting"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    json:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// LoggingConfig is the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// envVarPattern matches ${ENV_VAR} references inside the config file body.
var envVarPattern = regexp.MustCompile(`\${([^}]+)}`)

// LoadConfig loads configuration from config.yaml, overlaying environment
// variables. The demo must run with zero setup, so a missing config file is
// not an error: the shipped defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dojo/")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.greeting", "Welcome to the dojo!")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		content, err := os.ReadFile(v.ConfigFileUsed())
		if err != nil {
			return nil, fmt.Errorf("error reading config file content: %w", err)
		}
		if err := v.ReadConfig(strings.NewReader(expandEnvRefs(string(content)))); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &cfg, nil
}

// expandEnvRefs replaces ${ENV_VAR} references with the variable's value.
// Unset variables are left as written so the reference stays visible.
func expandEnvRefs(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		envVar := match[2 : len(match)-1]
		if value := os.Getenv(envVar); value != "" {
			return value
		}
		return match
	})
}

// Addr returns the host:port the server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
