package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// MySQLStore inserts results into a MySQL table
type MySQLStore struct {
	db     *sql.DB
	insert string
}

// MySQLDSN builds the connection string. The password is read from the
// environment variable named by cfg.PasswordEnv.
func MySQLDSN(cfg config.MySQLConfig) string {
	c := mysql.NewConfig()
	c.User = cfg.User
	if cfg.PasswordEnv != "" {
		c.Passwd = os.Getenv(cfg.PasswordEnv)
	}
	c.Net = "tcp"
	c.Addr = cfg.Addr
	c.DBName = cfg.DBName
	c.AllowNativePasswords = true
	c.ParseTime = true
	return c.FormatDSN()
}

// OpenMySQL connects, pings and makes sure the results table exists
func OpenMySQL(ctx context.Context, cfg config.MySQLConfig) (*MySQLStore, error) {
	if !tableName.MatchString(cfg.Table) {
		return nil, fmt.Errorf("invalid table name %q", cfg.Table)
	}

	db, err := sql.Open("mysql", MySQLDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach mysql at %s: %w", cfg.Addr, err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL(cfg.Table)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", cfg.Table, err)
	}

	return &MySQLStore{db: db, insert: insertSQL(cfg.Table)}, nil
}

func createTableSQL(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"round_id CHAR(36) PRIMARY KEY, "+
		"seed BIGINT NOT NULL, "+
		"board VARCHAR(64) NOT NULL, "+
		"bubbles INT NOT NULL, "+
		"taps INT NOT NULL, "+
		"duration_ms BIGINT NOT NULL, "+
		"cleared_at DATETIME NOT NULL)", table)
}

func insertSQL(table string) string {
	return fmt.Sprintf("INSERT INTO `%s` "+
		"(round_id, seed, board, bubbles, taps, duration_ms, cleared_at) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?)", table)
}

// Save inserts r
func (s *MySQLStore) Save(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, s.insert,
		r.RoundID.String(), r.Seed, r.Board, r.Bubbles, r.Taps,
		r.Duration.Milliseconds(), r.ClearedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert result %s: %w", r.RoundID, err)
	}
	return nil
}

// Close closes the connection pool
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
