package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string         `env:"APP_ENV" envDefault:"development"`
	LogLevel    string         `env:"LOG_LEVEL"`
	Server      ServerConfig   `envPrefix:"SERVER_"`
	Database    DatabaseConfig `envPrefix:"DB_"`
	Redis       RedisConfig    `envPrefix:"REDIS_"`
	Auth        AuthConfig     `envPrefix:"AUTH_"`
	OTP         OTPConfig      `envPrefix:"OTP_"`
	Mail        MailConfig     `envPrefix:"SMTP_"`
	RabbitMQ    RabbitMQConfig `envPrefix:"RABBITMQ_"`
	Internal    InternalConfig `envPrefix:"INTERNAL_"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"3306"`
	User            string        `env:"USER" envDefault:"root"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" envDefault:"review"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"10m"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"true"`
}

type RedisConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpiration  time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	SessionExpTime time.Duration `env:"SESSION_EXP_TIME" envDefault:"24h"`
}

// OTPConfig bounds the registration and password reset workflows. Zero
// MaxVerifyAttempts or ResendCooldown disables that check.
type OTPConfig struct {
	TTL               time.Duration `env:"TTL" envDefault:"10m"`
	MaxVerifyAttempts int           `env:"MAX_VERIFY_ATTEMPTS" envDefault:"5"`
	ResendCooldown    time.Duration `env:"RESEND_COOLDOWN" envDefault:"30s"`
}

type MailConfig struct {
	Host     string `env:"HOST" envDefault:"smtp.sendgrid.net"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME" envDefault:"apikey"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@example.com"`
}

type RabbitMQConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5672"`
	User     string `env:"USER" envDefault:"guest"`
	Password string `env:"PASSWORD" envDefault:"guest"`
}

type InternalConfig struct {
	APIKey string `env:"API_KEY"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the HTTP API cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("missing AUTH_JWT_SECRET")
	}
	if c.Internal.APIKey == "" {
		return fmt.Errorf("missing INTERNAL_API_KEY")
	}
	if c.OTP.TTL <= 0 {
		return fmt.Errorf("OTP_TTL must be positive")
	}
	return nil
}

// GetDSN returns the MySQL DSN for sqlx.Connect.
func (c *Config) GetDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	dsn.DBName = c.Database.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	return dsn.FormatDSN()
}
