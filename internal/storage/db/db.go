package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/DanRulev/nihongo.git/internal/config"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

// Driver maps a store backend to its database/sql driver name.
func Driver(backend string) (string, error) {
	switch backend {
	case "sqlite":
		return "sqlite3", nil
	case "postgres":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	}
	return "", fmt.Errorf("backend %q is not a sql store", backend)
}

// DSN builds the connection string for the configured backend.
func DSN(cfg config.StoreConfig) (string, error) {
	conn := cfg.DB.Conn
	switch cfg.Backend {
	case "sqlite":
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path), nil
	case "postgres":
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			conn.Host, conn.Port, conn.Name, conn.User, conn.Password, conn.SSL), nil
	case "mysql":
		port := conn.Port
		if port == "" {
			port = "3306"
		}
		mc := mysql.NewConfig()
		mc.User = conn.User
		mc.Passwd = conn.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(conn.Host, port)
		mc.DBName = conn.Name
		mc.ParseTime = true
		mc.Loc = time.UTC
		return mc.FormatDSN(), nil
	}
	return "", fmt.Errorf("backend %q is not a sql store", cfg.Backend)
}

func InitDB(cfg config.StoreConfig) (*sqlx.DB, error) {
	driver, err := Driver(cfg.Backend)
	if err != nil {
		return nil, err
	}
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.DB.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables if they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range Schema(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed create schema: %w", err)
		}
	}
	return nil
}

// Schema returns the DDL for the given driver.
func Schema(driver string) []string {
	ts := "TIMESTAMP"
	switch driver {
	case "postgres":
		ts = "TIMESTAMPTZ"
	case "mysql":
		ts = "DATETIME(6)"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS deck_meta (
			id INTEGER PRIMARY KEY,
			strategy VARCHAR(16) NOT NULL,
			max_box INTEGER NOT NULL DEFAULT 0
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS vocab_items (
			position INTEGER PRIMARY KEY,
			term VARCHAR(128) NOT NULL,
			translation VARCHAR(256) NOT NULL,
			theme VARCHAR(64) NOT NULL DEFAULT '',
			success_count INTEGER NULL,
			attempt_count INTEGER NULL,
			box_number INTEGER NULL,
			next_review %s NULL
		)`, ts),
	}
}
