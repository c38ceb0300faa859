package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/onamkulam/interiors/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS enquiries (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    phone      TEXT NOT NULL DEFAULT '',
    details    TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_enquiries_created_at ON enquiries(created_at);
`

// SqliteEnquiryRepository stores enquiries in a local SQLite file. It backs
// STORE_DRIVER=sqlite for development without PostgreSQL.
type SqliteEnquiryRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ EnquiryRepository = (*SqliteEnquiryRepository)(nil)

// OpenSqlite opens (creating if needed) the SQLite database at path and
// applies the enquiries schema.
func OpenSqlite(path string) (*SqliteEnquiryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	return openSqlite(path + "?_journal_mode=WAL&_busy_timeout=5000")
}

// OpenSqliteMemory opens an in-memory database (useful for testing).
func OpenSqliteMemory() (*SqliteEnquiryRepository, error) {
	return openSqlite(":memory:")
}

func openSqlite(dsn string) (*SqliteEnquiryRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps :memory: databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &SqliteEnquiryRepository{db: db, now: time.Now}, nil
}

// Ping satisfies DB for the health check.
func (r *SqliteEnquiryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (r *SqliteEnquiryRepository) Close() error {
	return r.db.Close()
}

// Save inserts e, assigning a fresh UUID and the creation time.
func (r *SqliteEnquiryRepository) Save(ctx context.Context, e *model.Enquiry) error {
	id := uuid.NewString()
	createdAt := r.now().UTC()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO enquiries (id, name, email, phone, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, e.Name, e.Email, e.Phone, e.Details, createdAt,
	); err != nil {
		return err
	}
	e.ID = id
	e.CreatedAt = createdAt
	return nil
}

// FindByID returns the enquiry with the given id, or ErrNotFound.
func (r *SqliteEnquiryRepository) FindByID(ctx context.Context, id string) (*model.Enquiry, error) {
	var e model.Enquiry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, details, created_at FROM enquiries WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Details, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns enquiries newest first, paginated by limit/offset.
func (r *SqliteEnquiryRepository) List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, details, created_at
		 FROM enquiries
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ? OFFSET ?`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Enquiry
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
