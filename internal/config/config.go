package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

var (
	// ErrReadConfig ошибка чтения конфигурационного файла
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig ошибка валидации конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	PaymentsModeMock     = "mock"
	PaymentsModeRazorpay = "razorpay"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	RabbitMQ  RabbitMQConfig  `toml:"rabbitmq"`
	Auth      AuthConfig      `toml:"auth"`
	Payments  PaymentsConfig  `toml:"payments"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig пустой Addr отключает кэш каталога и redis-хранилище лимитера
type RedisConfig struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	CatalogCacheTTL int    `toml:"catalog_cache_ttl"` // секунды
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// RabbitMQConfig пустой URL отключает пересылку событий
type RabbitMQConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// AuthConfig секрет для проверки HS256 токенов
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// PaymentsConfig выбор платёжного провайдера
type PaymentsConfig struct {
	Mode              string `toml:"mode"`
	Currency          string `toml:"currency"`
	RazorpayKeyID     string `toml:"razorpay_key_id"`
	RazorpayKeySecret string `toml:"razorpay_key_secret"`
}

// BookingConfig правила бронирования площадки
type BookingConfig struct {
	Locations              []string `toml:"locations"`
	DailySlots             []string `toml:"daily_slots"`
	BufferMinutes          int      `toml:"buffer_minutes"`
	ExtraHourMinutes       int      `toml:"extra_hour_minutes"`
	DefaultDurationMinutes int      `toml:"default_duration_minutes"`
	MaxGuests              int      `toml:"max_guests"`
	Timezone               string   `toml:"timezone"`
}

// Location часовой пояс площадки
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Timezone)
}

// RateLimitConfig лимиты для публичных эндпоинтов в формате ulule/limiter ("10-M")
// TrustForwardHeader включать только за доверенным прокси, иначе клиент подменяет IP
type RateLimitConfig struct {
	Enabled            bool   `toml:"enabled"`
	Public             string `toml:"public"`
	TrustForwardHeader bool   `toml:"trust_forward_header"`
}

// Load читает TOML файл и накладывает секреты из окружения (.env подхватывается, если есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// .env не обязателен
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "party-booking-service",
		},
		Redis:    RedisConfig{CatalogCacheTTL: 30},
		RabbitMQ: RabbitMQConfig{Exchange: "party.bookings"},
		Payments: PaymentsConfig{Mode: PaymentsModeMock, Currency: "USD"},
		Booking: BookingConfig{
			Locations:              []string{"Albany"},
			DailySlots:             []string{"10:00", "12:30", "15:00", "17:30"},
			BufferMinutes:          30,
			ExtraHourMinutes:       60,
			DefaultDurationMinutes: 120,
			MaxGuests:              60,
			Timezone:               "America/New_York",
		},
		RateLimit: RateLimitConfig{Public: "20-M"},
	}
}

func (c *Config) applyEnv() {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("JWT_SECRET", &c.Auth.JWTSecret)
	setString("PAYMENTS_MODE", &c.Payments.Mode)
	setString("RAZORPAY_KEY_ID", &c.Payments.RazorpayKeyID)
	setString("RAZORPAY_KEY_SECRET", &c.Payments.RazorpayKeySecret)
	setString("REDIS_ADDR", &c.Redis.Addr)
	setString("REDIS_PASSWORD", &c.Redis.Password)
	setString("RABBITMQ_URL", &c.RabbitMQ.URL)

	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

// Validate проверяет значения, без которых сервис не может стартовать
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	switch c.Payments.Mode {
	case PaymentsModeMock, PaymentsModeRazorpay:
	default:
		return fmt.Errorf("%w: payments.mode must be %q or %q", ErrInvalidConfig, PaymentsModeMock, PaymentsModeRazorpay)
	}

	b := c.Booking
	if len(b.Locations) == 0 {
		return fmt.Errorf("%w: booking.locations must not be empty", ErrInvalidConfig)
	}
	if len(b.DailySlots) == 0 {
		return fmt.Errorf("%w: booking.daily_slots must not be empty", ErrInvalidConfig)
	}
	for _, slot := range b.DailySlots {
		if err := types.TimeString(slot).Validate(); err != nil {
			return fmt.Errorf("%w: booking.daily_slots: %q: %v", ErrInvalidConfig, slot, err)
		}
	}
	if b.BufferMinutes < 0 || b.ExtraHourMinutes < 0 {
		return fmt.Errorf("%w: booking minutes must not be negative", ErrInvalidConfig)
	}
	if b.DefaultDurationMinutes <= 0 || b.MaxGuests <= 0 {
		return fmt.Errorf("%w: booking.default_duration_minutes and booking.max_guests must be positive", ErrInvalidConfig)
	}
	if _, err := b.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
