package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"

	minSecretKeyLen = 32
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - accounts, receptions, deliveries
	Postgres PostgresConfig

	// Redis - account projection cache (optional)
	Redis RedisConfig

	// Kafka - inventory events (optional)
	Kafka KafkaConfig

	// JWT - Authentication
	JWT           JWTConfig
	Cookie        CookieConfig
	Encrypter     EncrypterConfig
	AccessControl AccessControlConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// IsProduction reports whether cookies must be marked Secure.
func (e EnvironmentConfig) IsProduction() bool {
	return strings.EqualFold(e.Name, EnvironmentProduction)
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis. The cache is skipped when Enabled is false.
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	DB           int
	UserCacheTTL time.Duration
}

// KafkaConfig is the configuration for Kafka. Events are dropped when Brokers is empty.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Enabled reports whether an event producer should be created.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// JWTConfig configures token signing. SecretKey has no default.
type JWTConfig struct {
	Issuer     string
	SecretKey  string
	RefreshTTL time.Duration
}

// CookieConfig configures the access and refresh token cookies.
type CookieConfig struct {
	Domain      string
	Secure      bool
	SameSite    string
	Path        string
	AccessName  string
	RefreshName string
}

// EncrypterConfig is the configuration for password hashing
type EncrypterConfig struct {
	BcryptCost int
}

// AccessControlConfig controls self-service role selection on registration.
type AccessControlConfig struct {
	AllowRoleOnRegister bool
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigName("inventory-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/inventory/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Deployment variable names of the previous backend
	_ = viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY", "JWT_SECRET")
	_ = viper.BindEnv("jwt.refresh_ttl", "JWT_REFRESH_TTL", "JWT_EXPIRE")
	_ = viper.BindEnv("environment.name", "ENVIRONMENT_NAME", "NODE_ENV")

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.UserCacheTTL = viper.GetDuration("redis.user_cache_ttl")

	// Kafka
	cfg.Kafka.Brokers = nonEmpty(viper.GetStringSlice("kafka.brokers"))
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	refreshTTL, err := ParseLifetime(viper.GetString("jwt.refresh_ttl"))
	if err != nil {
		return nil, fmt.Errorf("jwt.refresh_ttl: %w", err)
	}
	cfg.JWT.RefreshTTL = refreshTTL

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure") || cfg.Environment.IsProduction()
	cfg.Cookie.SameSite = viper.GetString("cookie.samesite")
	cfg.Cookie.Path = viper.GetString("cookie.path")
	cfg.Cookie.AccessName = viper.GetString("cookie.access_name")
	cfg.Cookie.RefreshName = viper.GetString("cookie.refresh_name")

	// Encrypter
	cfg.Encrypter.BcryptCost = viper.GetInt("encrypter.bcrypt_cost")

	// Access Control
	cfg.AccessControl.AllowRoleOnRegister = viper.GetBool("access_control.allow_role_on_register")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", EnvironmentDevelopment)

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "inventory")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "public")

	// Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.user_cache_ttl", "5m")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "inventory.events")
	viper.SetDefault("kafka.client_id", "inventory-srv")

	// JWT
	viper.SetDefault("jwt.issuer", "inventory-srv")
	viper.SetDefault("jwt.refresh_ttl", "7d")

	// Cookie
	viper.SetDefault("cookie.domain", "")
	viper.SetDefault("cookie.secure", false)
	viper.SetDefault("cookie.samesite", "Lax")
	viper.SetDefault("cookie.path", "/")
	viper.SetDefault("cookie.access_name", "accessToken")
	viper.SetDefault("cookie.refresh_name", "refreshToken")

	// Encrypter
	viper.SetDefault("encrypter.bcrypt_cost", 10)

	// Access Control
	viper.SetDefault("access_control.allow_role_on_register", false)
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < minSecretKeyLen {
		return fmt.Errorf("jwt.secret_key must be at least %d characters for security", minSecretKeyLen)
	}
	if cfg.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("jwt.refresh_ttl must be greater than 0")
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.Kafka.Enabled() && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}

	// Validate Cookie Configuration
	if cfg.Cookie.AccessName == "" || cfg.Cookie.RefreshName == "" {
		return fmt.Errorf("cookie.access_name and cookie.refresh_name are required")
	}
	if cfg.Cookie.AccessName == cfg.Cookie.RefreshName {
		return fmt.Errorf("cookie.access_name and cookie.refresh_name must differ")
	}

	return nil
}

// ParseLifetime parses a Go duration ("168h") or a whole number of days ("7d").
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty lifetime")
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime %q: %w", s, err)
	}
	return d, nil
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
