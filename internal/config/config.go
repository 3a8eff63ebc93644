package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppPort string
	LogMode string

	DBDriver   string
	DBLogLevel string
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PGHost    string
	PGPort    string
	PGDB      string
	PGUser    string
	PGPass    string
	PGSSLMode string

	// empty RedisAddr disables the idempotency middleware
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	CORSOrigins []string
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort: getenv("APP_PORT", "8001"),
		LogMode: getenv("LOG_MODE", "dev"),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DBLogLevel: strings.ToLower(getenv("DB_LOG_LEVEL", "warn")),
		SQLitePath: getenv("SQLITE_PATH", "real_estate.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "real_estate"),
		MySQLUser: getenv("MYSQL_USER", "real_estate"),
		MySQLPass: getenv("MYSQL_PASS", "real_estate"),

		PGHost:    getenv("POSTGRES_HOST", "postgres"),
		PGPort:    getenv("POSTGRES_PORT", "5432"),
		PGDB:      getenv("POSTGRES_DB", "real_estate"),
		PGUser:    getenv("POSTGRES_USER", "postgres"),
		PGPass:    getenv("POSTGRES_PASS", ""),
		PGSSLMode: getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:    getenv("REDIS_ADDR", ""),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		CORSOrigins: []string{"*"},
	}
	if v := getenv("CORS_ORIGINS", ""); v != "" {
		c.CORSOrigins = splitCSV(v)
	}
	return c
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverPostgres:
		if c.PGHost == "" || c.PGPort == "" || c.PGDB == "" || c.PGUser == "" {
			return errors.New("missing Postgres config (POSTGRES_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.PGPort); err != nil {
			return fmt.Errorf("invalid POSTGRES_PORT %q: %w", c.PGPort, err)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", c.DBDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PGHost, c.PGPort, c.PGUser, c.PGPass, c.PGDB, c.PGSSLMode)
}

// SQLiteDSN enables foreign keys and a busy timeout so concurrent writers wait instead of failing.
func (c *Config) SQLiteDSN() string {
	return c.SQLitePath + "?_foreign_keys=on&_busy_timeout=5000"
}
