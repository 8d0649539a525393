package config

import (
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	GinMode  string
	Database DatabaseConfig
}

// DatabaseConfig holds MySQL connection and pool settings.
type DatabaseConfig struct {
	// URL is a full DSN. When set it wins over the discrete fields below.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// QueryTimeout bounds a single request's database round-trips. Zero disables it.
	QueryTimeout time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first if a .env file should
// be honoured.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "warframe_user")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "warframe")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("DB_QUERY_TIMEOUT", 10*time.Second)

	ginMode := v.GetString("GIN_MODE")
	switch ginMode {
	case "debug", "release", "test":
	default:
		ginMode = "release"
	}

	return &Config{
		Port:    v.GetString("PORT"),
		GinMode: ginMode,
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			QueryTimeout:    v.GetDuration("DB_QUERY_TIMEOUT"),
		},
	}
}

// DSN returns the MySQL data source name for the configured database.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}
