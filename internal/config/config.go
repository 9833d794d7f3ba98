package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisURL     string
	JWTSecret    string
	Port         string
	AllowOrigins []string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
}

func LoadConfig() (*Config, error) {
	// .env опционален: в контейнере всё приходит из окружения
	_ = godotenv.Load()

	cfg := &Config{
		RedisURL:  os.Getenv("REDIS_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      os.Getenv("PORT"),
		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  os.Getenv("SMTP_PORT"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		SMTPFrom:  os.Getenv("SMTP_FROM"),
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379/0"
	}
	if cfg.Port == "" {
		cfg.Port = ":8080"
	}
	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	return cfg, nil
}

// MailEnabled — без SMTP-конфига письма просто не отправляются.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPPort != ""
}
