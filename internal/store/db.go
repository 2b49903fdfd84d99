package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect captures the SQL differences between the supported drivers
type Dialect struct {
	Driver        string
	TimestampType string
	positional    bool
}

var (
	// Postgres is the dialect for github.com/lib/pq
	Postgres = Dialect{Driver: "postgres", TimestampType: "TIMESTAMPTZ", positional: true}

	// SQLite is the dialect for modernc.org/sqlite
	SQLite = Dialect{Driver: "sqlite", TimestampType: "TEXT"}
)

var placeholderRe = regexp.MustCompile(`\$\d+`)

// Rebind rewrites $N placeholders for drivers that expect ?
func (d Dialect) Rebind(query string) string {
	if d.positional {
		return query
	}
	return placeholderRe.ReplaceAllString(query, "?")
}

// DialectFor returns the dialect for a driver name
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Driver, "postgresql":
		return Postgres, nil
	case SQLite.Driver, "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// NewDB opens and pings a database for the dialect
func NewDB(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.Driver, err)
	}

	if dialect == SQLite {
		// a single connection keeps in-memory databases shared across queries
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect.Driver, err)
	}

	return db, nil
}
