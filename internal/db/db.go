// ABOUTME: Database store construction and connection handling
// ABOUTME: Opens SQLite via mattn or modernc drivers and bootstraps the schema
package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

const (
	// DriverMattn is the cgo driver from github.com/mattn/go-sqlite3.
	DriverMattn = "sqlite3"
	// DriverModernc is the pure Go driver from modernc.org/sqlite.
	DriverModernc = "sqlite"

	// TimestampLayout is how entry timestamps are stored in the ts column.
	TimestampLayout = "2006-01-02 15:04:05"

	busyTimeoutMillis = 5000
)

// ErrUnsupportedDriver is returned by Open for a driver name outside the allow-list.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Store owns the mood database file. Construct one per process with Open and
// pass it to whatever needs it.
type Store struct {
	db     *sqlx.DB
	path   string
	driver string
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithDriver selects the SQL driver (DriverMattn or DriverModernc).
func WithDriver(name string) Option {
	return func(s *Store) {
		s.driver = name
	}
}

// WithClock overrides the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger for store diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open opens (or creates) the database at dbPath and ensures the schema exists.
func Open(dbPath string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   dbPath,
		driver: DriverMattn,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.driver == "" {
		s.driver = DriverMattn
	}
	if s.driver != DriverMattn && s.driver != DriverModernc {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, s.driver)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	database, err := sqlx.Open(s.driver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One short-lived connection per operation; nothing is kept idle between calls.
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(0)
	s.db = database

	if err := s.ensureSchema(context.Background()); err != nil {
		_ = database.Close()
		return nil, err
	}

	s.logger.Debug("database ready", "path", dbPath, "driver", s.driver)
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Driver returns the SQL driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

// conn acquires a connection with foreign key enforcement turned on.
// Callers must Close it on every path.
func (s *Store) conn(ctx context.Context) (*sqlx.Conn, error) {
	c, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	// Cascading deletes depend on this
	if _, err := c.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := c.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMillis)); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return c, nil
}

// ensureSchema creates tables and indexes that do not exist yet.
func (s *Store) ensureSchema(ctx context.Context) error {
	c, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if _, err := c.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// IsConstraintViolation reports whether err came from a CHECK, UNIQUE, NOT NULL
// or foreign key constraint in either supported driver.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var mattnErr sqlite3.Error
	if errors.As(err, &mattnErr) {
		return mattnErr.Code == sqlite3.ErrConstraint
	}

	var moderncErr *sqlite.Error
	if errors.As(err, &moderncErr) {
		return moderncErr.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT
	}

	return false
}
