package service

import (
	"context"
	"log/slog"

	"github.com/onamkulam/interiors/internal/model"
	"github.com/onamkulam/interiors/internal/repository"
)

// enquiryServiceImpl is the production implementation of EnquiryService.
type enquiryServiceImpl struct {
	repo     repository.EnquiryRepository
	notifier Notifier
}

// NewEnquiryService creates an EnquiryService. notifier may be nil, in which
// case saved enquiries are not forwarded anywhere.
func NewEnquiryService(repo repository.EnquiryRepository, notifier Notifier) EnquiryService {
	return &enquiryServiceImpl{repo: repo, notifier: notifier}
}

// Submit validates e, stores it and queues notifications. Persistence
// success alone decides the outcome; notification runs out of band.
func (s *enquiryServiceImpl) Submit(ctx context.Context, e *model.Enquiry) error {
	if err := ValidateEnquiry(e); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return &PersistenceError{Err: err}
	}
	slog.Info("enquiry saved", "enquiry_id", e.ID)

	if s.notifier != nil {
		s.notifier.Notify(*e)
	}
	return nil
}

func (s *enquiryServiceImpl) Get(ctx context.Context, id string) (*model.Enquiry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *enquiryServiceImpl) List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
	return s.repo.List(ctx, opts)
}
