// README: Configuration loading (YAML file + TRIPMATE_ env overrides).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Weather WeatherConfig `mapstructure:"weather"`
	Places  PlacesConfig  `mapstructure:"places"`
	Session SessionConfig `mapstructure:"session"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LLMConfig struct {
	// Provider selects the completion backend: "deepseek", "openai" or "gemini".
	Provider  string `mapstructure:"provider"`
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

type WeatherConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PlacesConfig struct {
	MapsAPIKey string `mapstructure:"maps_api_key"`
}

type SessionConfig struct {
	// Backend selects the session store: "memory" or "redis".
	Backend         string        `mapstructure:"backend"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the YAML config at path and applies env overrides. API keys fall
// back to their conventional environment variables so a config file never has
// to contain secrets.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TRIPMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = firstEnv("DEEPSEEK_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY")
	}
	if cfg.Weather.APIKey == "" {
		cfg.Weather.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	}
	if cfg.Places.MapsAPIKey == "" {
		cfg.Places.MapsAPIKey = os.Getenv("MAPS_API_KEY")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Minute)

	v.SetDefault("llm.provider", "deepseek")
	v.SetDefault("llm.base_url", "https://api.deepseek.com/v1")
	v.SetDefault("llm.model", "deepseek-chat")
	v.SetDefault("llm.max_tokens", 2048)

	v.SetDefault("weather.timeout", 5*time.Second)

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", time.Hour)
	v.SetDefault("session.cleanup_interval", 5*time.Minute)
	v.SetDefault("session.redis_addr", "localhost:6379")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("cors.max_age", 3600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
