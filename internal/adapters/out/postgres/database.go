package postgres

import (
	"fmt"
	"strconv"
	"time"

	"wms/internal/adapters/out/postgres/itemrepo"
	"wms/internal/adapters/out/postgres/locationrepo"
	"wms/internal/adapters/out/postgres/movementrepo"
	"wms/internal/adapters/out/postgres/orderrepo"
	"wms/internal/adapters/out/postgres/stockrepo"
	"wms/internal/adapters/out/postgres/taskrepo"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnConfig describes how to reach PostgreSQL.
type ConnConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Embedded starts a local PostgreSQL process in DataPath instead of connecting out.
	Embedded bool
	DataPath string

	LogLevel logger.LogLevel
}

// DB is a GORM handle plus the embedded server it may own.
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
}

// Connect opens the connection pool, starting the embedded server first when asked to.
func Connect(cfg ConnConfig) (*DB, error) {
	var embedded *embeddedpostgres.EmbeddedPostgres
	if cfg.Embedded {
		port, err := strconv.ParseUint(cfg.Port, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("embedded postgres port %q: %w", cfg.Port, err)
		}

		embedded = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
			DataPath(cfg.DataPath).
			Port(uint32(port)).
			Database(cfg.Name).
			Username(cfg.User).
			Password(cfg.Password))
		if err = embedded.Start(); err != nil {
			return nil, fmt.Errorf("start embedded postgres: %w", err)
		}
		cfg.Host = "localhost"
		cfg.SSLMode = "disable"
	}

	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		if embedded != nil {
			_ = embedded.Stop()
		}
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &DB{DB: db, embedded: embedded}, nil
}

// DSN renders cfg as a libpq keyword/value connection string.
func DSN(cfg ConnConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode,
	)
}

// Close closes the pool and stops the embedded server if there is one.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if db.embedded != nil {
		if stopErr := db.embedded.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	return err
}

// Models lists every table the service owns, in dependency-free order.
func Models() []any {
	return []any{
		&itemrepo.ItemDTO{},
		&locationrepo.LocationDTO{},
		&stockrepo.StockDTO{},
		&movementrepo.MovementDTO{},
		&taskrepo.TaskDTO{},
		&orderrepo.OrderDTO{},
	}
}

// Migrate creates or alters the schema of every table in Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// ParseLogLevel maps LOG_LEVEL values onto GORM's levels. Unknown values mean warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}
