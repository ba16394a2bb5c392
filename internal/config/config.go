package config

import (
	"github.com/maxviazov/racha-stats-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Stats    StatsConfig         `mapstructure:"stats"`
}

type AppConfig struct {
	Name            string `mapstructure:"name" validate:"required"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"` // seconds
}

// PostgresConfig holds connection and pool settings. Durations are in seconds.
// User, Password and DBName are secrets and are expected from the environment.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=1"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// StatsConfig tunes the standings computation.
type StatsConfig struct {
	// Timezone is the IANA zone in which match dates become calendar years and quadrimesters.
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
	// Locale is the BCP 47 tag used to collate names in the ranking tie-break.
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
}
