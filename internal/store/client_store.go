package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jjenkins/clients/internal/model"
)

// ClientStore handles database operations for clients
type ClientStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewClientStore creates a new ClientStore
func NewClientStore(db *sql.DB, dialect Dialect) *ClientStore {
	return &ClientStore{db: db, dialect: dialect}
}

// CreateSchema creates the clients table if it does not exist
func (s *ClientStore) CreateSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS clients (
			id         INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			type       TEXT NOT NULL,
			email      TEXT NOT NULL,
			status     TEXT,
			created_at %[1]s NOT NULL,
			updated_at %[1]s NOT NULL,
			checksum   TEXT NOT NULL DEFAULT ''
		)
	`, s.dialect.TimestampType)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create clients table: %w", err)
	}
	return nil
}

// GetAll retrieves all clients ordered by id
func (s *ClientStore) GetAll(ctx context.Context) ([]model.ClientRecord, error) {
	query := `
		SELECT id, name, type, email, status, created_at, updated_at
		FROM clients
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	defer rows.Close()

	var clients []model.ClientRecord
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

// GetByID retrieves a client by id
func (s *ClientStore) GetByID(ctx context.Context, id int) (*model.ClientRecord, error) {
	query := s.dialect.Rebind(`
		SELECT id, name, type, email, status, created_at, updated_at
		FROM clients
		WHERE id = $1
	`)

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client %d: %w", id, err)
	}

	return &c, nil
}

// GetChecksum returns the stored checksum for a client, and whether the client exists
func (s *ClientStore) GetChecksum(ctx context.Context, id int) (string, bool, error) {
	query := s.dialect.Rebind(`SELECT checksum FROM clients WHERE id = $1`)

	var checksum string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&checksum)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get checksum for client %d: %w", id, err)
	}

	return checksum, true, nil
}

// Upsert inserts or updates a client
func (s *ClientStore) Upsert(ctx context.Context, c model.ClientRecord, checksum string) error {
	query := s.dialect.Rebind(`
		INSERT INTO clients (id, name, type, email, status, created_at, updated_at, checksum)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			email = EXCLUDED.email,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			checksum = EXCLUDED.checksum
	`)

	var status sql.NullString
	if c.Status != model.StatusUnknown {
		status = sql.NullString{String: string(c.Status), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		string(c.Type),
		c.Email,
		status,
		c.CreatedAt.UTC().Format(time.RFC3339Nano),
		c.UpdatedAt.UTC().Format(time.RFC3339Nano),
		checksum,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert client %d: %w", c.ID, err)
	}

	return nil
}

// CountClients returns the number of stored clients
func (s *ClientStore) CountClients(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (model.ClientRecord, error) {
	var (
		c                    model.ClientRecord
		clientType           string
		status               sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&clientType,
		&c.Email,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return c, err
	}
	if err != nil {
		return c, fmt.Errorf("failed to scan client: %w", err)
	}

	c.Type = model.ClientType(clientType)
	c.Status = model.ClientStatus(status.String)

	if c.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return c, fmt.Errorf("client %d created_at: %w", c.ID, err)
	}
	if c.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return c, fmt.Errorf("client %d updated_at: %w", c.ID, err)
	}

	return c, nil
}

// parseTimestamp reads timestamps stored as text (sqlite) or converted from time.Time (postgres)
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
