package database

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quoteserver/internal/database/migrations"
	"github.com/mrlokans/quoteserver/internal/errkind"
)

const (
	// DefaultMaxOpenConns bounds the pool when Options leaves it unset.
	DefaultMaxOpenConns = 10

	memoryPath = ":memory:"
)

// Options tunes the connection pool and gorm logging.
type Options struct {
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// Database owns the connection pool. The embedded *gorm.DB is safe for
// concurrent use; callers never lock around it.
type Database struct {
	DB   *gorm.DB
	Path string
}

// NewDatabase opens the store at uri with default options.
func NewDatabase(uri string) (*Database, error) {
	return Open(uri, Options{})
}

// Open makes sure the database file and its directory exist, applies pending
// migrations and returns the pooled handle. Every failure is a StoreInit error.
func Open(uri string, opts Options) (*Database, error) {
	path, params, err := ParseURI(uri)
	if err != nil {
		return nil, errkind.E(errkind.StoreInit, "parse database uri", err)
	}

	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, errkind.E(errkind.StoreInit, "create database directory", err)
			}
		}
	}

	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	db, err := gorm.Open(sqlite.Open(dsn(path, params)), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errkind.E(errkind.StoreInit, "connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errkind.E(errkind.StoreInit, "get sql db", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	if path == memoryPath {
		// every connection to :memory: is a separate database
		maxOpen = 1
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errkind.E(errkind.StoreInit, "ping database", err)
	}

	if err := ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		sqlDB.Close()
		return nil, errkind.E(errkind.StoreInit, "migrate database", err)
	}

	log.Printf("Database initialized successfully at %s", path)

	return &Database{DB: db, Path: path}, nil
}

// ParseURI splits a "sqlite:" URI into the file path and its driver options.
// Bare paths are accepted as-is.
func ParseURI(uri string) (string, url.Values, error) {
	path := strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(path, "sqlite://"):
		path = strings.TrimPrefix(path, "sqlite://")
	case strings.HasPrefix(path, "sqlite:"):
		path = strings.TrimPrefix(path, "sqlite:")
	case strings.Contains(path, "://"):
		return "", nil, fmt.Errorf("unsupported database scheme in %q", uri)
	}

	params := url.Values{}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		var err error
		if params, err = url.ParseQuery(path[i+1:]); err != nil {
			return "", nil, fmt.Errorf("invalid database options in %q: %w", uri, err)
		}
		path = path[:i]
	}
	if path == "" {
		return "", nil, errors.New("database path is empty")
	}
	return path, params, nil
}

var defaultDSNParams = map[string]string{
	"_busy_timeout": "5000",
	"_journal_mode": "WAL",
	"_foreign_keys": "on",
}

// dsn builds the driver connection string. Options given in the URI win over
// the defaults.
func dsn(path string, params url.Values) string {
	merged := url.Values{}
	for key, values := range params {
		merged[key] = values
	}
	if path != memoryPath {
		for key, value := range defaultDSNParams {
			if !merged.Has(key) {
				merged.Set(key, value)
			}
		}
	}
	if len(merged) == 0 {
		return path
	}
	return path + "?" + merged.Encode()
}

// Ping checks that a pooled connection can reach the database.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
