package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from a .env file,
// an optional YAML file and environment variables, in that order.
type Config struct {
	ServerPort     string        `yaml:"server_port"`
	DBDriver       string        `yaml:"db_driver"`
	DatabaseDSN    string        `yaml:"database_dsn"`
	ResetDB        bool          `yaml:"reset_db"`
	RedisAddr      string        `yaml:"redis_addr"`
	RedisDB        int           `yaml:"redis_db"`
	RedisPass      string        `yaml:"redis_password"`
	StaticDir      string        `yaml:"static_dir"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	CaptchaTTL     time.Duration `yaml:"captcha_ttl"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	PasswordScheme string        `yaml:"password_scheme"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		ServerPort:     "8080",
		DBDriver:       "mysql",
		DatabaseDSN:    "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=UTC",
		RedisAddr:      "",
		StaticDir:      "./public",
		SessionTTL:     24 * time.Hour,
		CaptchaTTL:     5 * time.Minute,
		SweepInterval:  10 * time.Minute,
		PasswordScheme: "sha256",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load builds Config from .env, CONFIG_FILE and the environment.
func Load() (*Config, error) {
	// a missing .env is the normal production case
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", getEnv("MYSQL_DSN", cfg.DatabaseDSN))
	cfg.ResetDB = getEnvBool("RESET_DB", cfg.ResetDB)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	if strings.EqualFold(cfg.RedisAddr, "none") {
		cfg.RedisAddr = ""
	}
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.SessionTTL = getEnvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.CaptchaTTL = getEnvDuration("CAPTCHA_TTL", cfg.CaptchaTTL)
	cfg.SweepInterval = getEnvDuration("SWEEP_INTERVAL", cfg.SweepInterval)
	cfg.PasswordScheme = strings.ToLower(getEnv("PASSWORD_SCHEME", cfg.PasswordScheme))
	cfg.SecureCookies = getEnvBool("SECURE_COOKIES", cfg.SecureCookies)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	switch c.PasswordScheme {
	case "sha256", "bcrypt":
	default:
		return fmt.Errorf("unsupported PASSWORD_SCHEME %q", c.PasswordScheme)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.CaptchaTTL <= 0 {
		return fmt.Errorf("CAPTCHA_TTL must be positive")
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("SWEEP_INTERVAL must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
