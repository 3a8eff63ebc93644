package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"realestate-backend/internal/config"
	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/payment"
	"realestate-backend/internal/domain/receipt"
	"realestate-backend/internal/domain/resale"
	"realestate-backend/internal/infrastructure/logger"
)

// Dialector picks the gorm driver for cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLiteDSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.PostgresDSN()), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

func OpenGorm(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	gdb, err := OpenGormWithDialector(dial, ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == config.DriverSQLite {
		// one writer at a time; the busy timeout in the DSN queues the rest
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	log.Info("gorm: connected", "driver", cfg.DBDriver)
	return gdb, nil
}

// OpenGormWithDialector opens, tunes the pool, then pings once. Unique-constraint
// violations are translated to gorm.ErrDuplicatedKey.
func OpenGormWithDialector(dial gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
		// the ping below runs after pool tuning
		DisableAutomaticPing: true,
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}

func ParseLogLevel(s string) gormlogger.LogLevel {
	switch s {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// Models lists every persisted entity, in dependency order.
func Models() []any {
	return []any{
		&house.House{},
		&receipt.Receipt{},
		&contract.Contract{},
		&payment.Payment{},
		&resale.Resale{},
	}
}

// Migrate creates the five tables (and indexes) when absent.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
