package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"github.com/zenathia/zenathia-web/internal/config"
	"github.com/zenathia/zenathia-web/internal/repository/migrations"
)

// NewDB opens a MySQL connection pool from the discrete config fields
// and verifies it is reachable.
func NewDB(cfg config.Config) (*sql.DB, error) {
	dsnCfg := mysql.NewConfig()
	dsnCfg.User = cfg.MySQLUser
	dsnCfg.Passwd = cfg.MySQLPassword
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = net.JoinHostPort(cfg.MySQLHost, strconv.Itoa(cfg.MySQLPort))
	dsnCfg.DBName = cfg.MySQLDatabase
	dsnCfg.ParseTime = true

	db, err := sql.Open("mysql", dsnCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate brings the schema up to date from the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
