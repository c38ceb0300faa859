package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onamkulam/interiors/internal/model"
)

// PgEnquiryRepository is the PostgreSQL implementation of EnquiryRepository.
type PgEnquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPgEnquiryRepository creates a PgEnquiryRepository backed by the given pool.
func NewPgEnquiryRepository(pool *pgxpool.Pool) *PgEnquiryRepository {
	return &PgEnquiryRepository{pool: pool}
}

var _ EnquiryRepository = (*PgEnquiryRepository)(nil)

// Save inserts a new enquiries row and populates e.ID and e.CreatedAt
// from the RETURNING clause.
func (r *PgEnquiryRepository) Save(ctx context.Context, e *model.Enquiry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO enquiries (name, email, phone, details)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id, created_at`,
		e.Name, e.Email, e.Phone, e.Details,
	).Scan(&e.ID, &e.CreatedAt)
}

// FindByID returns the enquiry with the given id, or ErrNotFound.
func (r *PgEnquiryRepository) FindByID(ctx context.Context, id string) (*model.Enquiry, error) {
	var e model.Enquiry
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(details, ''), created_at
		 FROM enquiries WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Details, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns enquiries newest first, paginated by limit/offset.
func (r *PgEnquiryRepository) List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(details, ''), created_at
		 FROM enquiries
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
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
