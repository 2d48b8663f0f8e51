package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/kelimo/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// NewDriver opens the configured database and wraps it in an ent SQL driver.
func NewDriver(cfg *config.Config, logger *logrus.Logger) (dialect.Driver, func(), error) {
	driverName, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var (
		db         *sql.DB
		entDialect string
	)
	switch driverName {
	case "postgres":
		db, err = sql.Open("postgres", dsn)
		entDialect = dialect.Postgres
	case "pgx":
		db, err = openPgx(dsn, cfg.Database.LogSQL, logger)
		entDialect = dialect.Postgres
	case "mysql":
		db, err = sql.Open("mysql", dsn)
		entDialect = dialect.MySQL
	case "sqlite3":
		db, err = sql.Open("sqlite3", dsn)
		entDialect = dialect.SQLite
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driverName)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", driverName, err)
	}

	if err := prepare(db, entDialect, cfg.Database.MaxOpenConns); err != nil {
		db.Close()
		return nil, nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(entDialect, db)
	// pgx logs through its own tracer.
	if cfg.Database.LogSQL && driverName != "pgx" {
		drv = dialect.Debug(drv, func(args ...any) {
			logger.WithField("component", "sql").Debug(args...)
		})
	}

	return drv, func() {
		if err := drv.Close(); err != nil {
			logger.WithError(err).Warn("close database")
		}
	}, nil
}

func prepare(db *sql.DB, entDialect string, maxOpen int) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if entDialect == dialect.SQLite {
		// sqlite serializes writers; a single connection also keeps the pragma below in effect.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s db: %w", entDialect, err)
	}
	if entDialect == dialect.SQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			return fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return nil
}

// openPgx uses pgx through database/sql so the same ent driver serves both postgres drivers.
func openPgx(dsn string, logSQL bool, logger *logrus.Logger) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	if logSQL {
		entry := logger.WithField("component", "pgx")
		connCfg.Tracer = &tracelog.TraceLog{
			Logger: tracelog.LoggerFunc(func(_ context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
				entry.WithFields(logrus.Fields(data)).Log(pgxLevel(lvl), msg)
			}),
			LogLevel: tracelog.LogLevelDebug,
		}
	}
	return stdlib.OpenDB(*connCfg), nil
}

func pgxLevel(lvl tracelog.LogLevel) logrus.Level {
	switch lvl {
	case tracelog.LogLevelError:
		return logrus.ErrorLevel
	case tracelog.LogLevelWarn:
		return logrus.WarnLevel
	case tracelog.LogLevelInfo:
		return logrus.InfoLevel
	case tracelog.LogLevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
