package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppEnv                 string
	Port                   string
	DBDriver               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	JWTSecret              string
	AllowAdminRegistration bool
	OpenAIAPIKey           string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// Load reads configuration from environment variables and an optional .env
// file. A missing JWT secret is a hard error: tokens cannot be issued or
// verified without it, so the process must not start.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "taskboard")
	v.SetDefault("db.password", "taskboard")
	v.SetDefault("db.name", "taskboard")
	v.SetDefault("allow.admin.registration", false)

	cfg := Config{
		AppEnv:                 v.GetString("app.env"),
		Port:                   v.GetString("port"),
		DBDriver:               strings.ToLower(v.GetString("db.driver")),
		DBHost:                 v.GetString("db.host"),
		DBPort:                 v.GetString("db.port"),
		DBUser:                 v.GetString("db.user"),
		DBPassword:             v.GetString("db.password"),
		DBName:                 v.GetString("db.name"),
		JWTSecret:              v.GetString("jwt.secret"),
		AllowAdminRegistration: v.GetBool("allow.admin.registration"),
		OpenAIAPIKey:           v.GetString("openai.api.key"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be provided")
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "mysql" {
		return Config{}, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	return cfg, nil
}
