package service

import (
	"context"

	"github.com/onamkulam/interiors/internal/model"
)

// EnquiryService defines the business logic for enquiry submissions.
type EnquiryService interface {
	// Submit validates and stores a new enquiry, then hands it to the
	// notifier. e.ID and e.CreatedAt are populated on success.
	// Returns *ValidationError or *PersistenceError on failure.
	Submit(ctx context.Context, e *model.Enquiry) error

	// Get returns a single enquiry by id (repository.ErrNotFound if absent).
	Get(ctx context.Context, id string) (*model.Enquiry, error)

	// List returns enquiries newest first.
	List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error)
}

// Notifier receives saved enquiries for out-of-band email delivery.
// Notify must not block on network I/O.
type Notifier interface {
	Notify(e model.Enquiry)
}
