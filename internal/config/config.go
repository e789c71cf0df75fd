package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

const (
	SourceREST = "rest"
	SourceDB   = "db"
)

// Настройки сервиса доступности.
type AppConfig struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	GRPCAddr string `mapstructure:"CORE_GRPC_ADDR"`

	// Откуда читать брони: rest (API бэкенда) или db (его база напрямую).
	SnapshotSource  string        `mapstructure:"SNAPSHOT_SOURCE"`
	RefreshInterval time.Duration `mapstructure:"SNAPSHOT_REFRESH_INTERVAL"`

	BackendURL     string        `mapstructure:"BACKEND_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	RestaurantTimezone string `mapstructure:"RESTAURANT_TIMEZONE"`
	BackendTimezone    string `mapstructure:"BACKEND_TIMEZONE"`

	SlotCapacity int    `mapstructure:"SLOT_CAPACITY"`
	SlotSchedule string `mapstructure:"SLOT_SCHEDULE"`
}

type Config struct {
	App AppConfig
	DB  DBConfig
}

func setAppDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORE_GRPC_ADDR", ":50051")
	v.SetDefault("SNAPSHOT_SOURCE", SourceREST)
	v.SetDefault("SNAPSHOT_REFRESH_INTERVAL", "30s")
	v.SetDefault("BACKEND_URL", "https://restaurante-backend-s93j.onrender.com")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("RESTAURANT_TIMEZONE", "UTC")
	v.SetDefault("BACKEND_TIMEZONE", "UTC")
	v.SetDefault("SLOT_CAPACITY", calendar.DefaultSlotCapacity)
	v.SetDefault("SLOT_SCHEDULE", "12:00,13:00,14:00,18:00,19:00,20:00,21:00")
}

// Load читает config.yaml (из . или ./config), если он есть,
// и переменные окружения поверх него.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setAppDefaults(v)
	setDBDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(&cfg.App); err != nil {
		return nil, fmt.Errorf("decode app config: %w", err)
	}
	if err := v.Unmarshal(&cfg.DB); err != nil {
		return nil, fmt.Errorf("decode db config: %w", err)
	}

	cfg.App.SnapshotSource = strings.ToLower(strings.TrimSpace(cfg.App.SnapshotSource))
	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))

	if err := cfg.App.Validate(); err != nil {
		return nil, err
	}
	if cfg.App.SnapshotSource == SourceDB {
		if err := cfg.DB.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *AppConfig) Validate() error {
	switch c.SnapshotSource {
	case SourceREST, SourceDB:
	default:
		return fmt.Errorf("invalid config: unknown snapshot source %q", c.SnapshotSource)
	}
	if c.GRPCAddr == "" {
		return errors.New("invalid config: grpc addr must not be empty")
	}
	if c.RefreshInterval <= 0 {
		return errors.New("invalid config: refresh interval must be positive")
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.BackendLocation(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Policy собирает настройки расчёта доступности.
func (c *AppConfig) Policy() (calendar.Policy, error) {
	loc, err := time.LoadLocation(c.RestaurantTimezone)
	if err != nil {
		return calendar.Policy{}, fmt.Errorf("restaurant timezone: %w", err)
	}
	schedule, err := calendar.ParseSchedule(c.SlotSchedule)
	if err != nil {
		return calendar.Policy{}, err
	}

	p := calendar.Policy{
		Schedule:     schedule,
		SlotCapacity: c.SlotCapacity,
		Location:     loc,
	}
	if err := p.Validate(); err != nil {
		return calendar.Policy{}, err
	}
	return p, nil
}

// BackendLocation: пояс, в котором бэкенд хранит время без смещения.
func (c *AppConfig) BackendLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.BackendTimezone)
	if err != nil {
		return nil, fmt.Errorf("backend timezone: %w", err)
	}
	return loc, nil
}
