package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP        HTTPConfig   `mapstructure:"http"`
	Log         LogConfig    `mapstructure:"log"`
	Gemini      GeminiConfig `mapstructure:"gemini"`
	Gmail       GmailConfig  `mapstructure:"gmail"`
	SMTP        SMTPConfig   `mapstructure:"smtp"`
	ParamPrefix string       `mapstructure:"param_prefix"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GeminiConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type GmailConfig struct {
	User        string `mapstructure:"user"`
	AppPassword string `mapstructure:"app_password"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", 10*time.Second)
	v.SetDefault("gmail.user", "")
	v.SetDefault("gmail.app_password", "")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("param_prefix", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads service settings from the environment, layered over an optional
// config file named by CONFIG_FILE. Credential slots are not part of Config;
// they are resolved per request through an EnvSource.
func Load() (*Config, error) {
	v := newViper()
	if path := strings.TrimSpace(v.GetString("config_file")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if port := strings.TrimSpace(v.GetString("port")); port != "" && !v.IsSet("http_addr") {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.ParamPrefix = strings.TrimRight(strings.TrimSpace(cfg.ParamPrefix), "/")
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("config: gemini.timeout must be positive, got %s", c.Gemini.Timeout)
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("config: smtp.port out of range: %d", c.SMTP.Port)
	}
	return nil
}

// EnvSource looks names up in the process environment at call time, so a
// changed variable is visible to the next request without a restart.
type EnvSource struct {
	v *viper.Viper
}

func NewEnvSource() *EnvSource {
	v := viper.New()
	v.AutomaticEnv()
	return &EnvSource{v: v}
}

func (s *EnvSource) Lookup(_ context.Context, name string) (string, bool) {
	if !s.v.IsSet(name) {
		return "", false
	}
	return s.v.GetString(name), true
}
