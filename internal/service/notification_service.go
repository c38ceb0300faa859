package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/errgroup"

	"github.com/onamkulam/interiors/internal/model"
	"github.com/onamkulam/interiors/pkg/mailer"
)

// ErrNotificationsClosed is returned by Close when called twice.
var ErrNotificationsClosed = errors.New("notification service closed")

// NotificationConfig tunes the notification queue.
type NotificationConfig struct {
	// Inbox receives the admin notification (EMAIL_TO).
	Inbox     string
	QueueSize int
	// MaxTries bounds delivery attempts per email.
	MaxTries        uint
	InitialInterval time.Duration
	// OnFailure is the failure channel for undeliverable emails.
	// Defaults to an ERROR log.
	OnFailure func(*NotificationError)
}

// NotificationStats is a snapshot of delivery counters.
type NotificationStats struct {
	Enabled bool  `json:"enabled"`
	Queued  int   `json:"queued"`
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
	Dropped int64 `json:"dropped"`
}

// NotificationService delivers the admin and acknowledgment emails for saved
// enquiries from a bounded queue drained by a single worker.
type NotificationService struct {
	mailer mailer.Mailer
	cfg    NotificationConfig

	mu     sync.Mutex
	closed bool
	queue  chan model.Enquiry

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	sent    atomic.Int64
	failed  atomic.Int64
	dropped atomic.Int64
}

var _ Notifier = (*NotificationService)(nil)

// NewNotificationService creates the service and starts its worker. A nil
// mailer disables delivery: enquiries are skipped with a warning.
func NewNotificationService(m mailer.Mailer, cfg NotificationConfig) *NotificationService {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 3
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = time.Second
	}
	if cfg.OnFailure == nil {
		cfg.OnFailure = func(err *NotificationError) {
			slog.Error("notification failed", "kind", err.Kind, "enquiry_id", err.EnquiryID, "error", err.Err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &NotificationService{
		mailer: m,
		cfg:    cfg,
		queue:  make(chan model.Enquiry, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	if m == nil {
		slog.Warn("email environment variables not set; enquiry notifications disabled")
	}
	go s.run()
	return s
}

// Enabled reports whether emails are actually sent.
func (s *NotificationService) Enabled() bool {
	return s.mailer != nil
}

// Notify queues e for delivery without blocking. When the queue is full or
// the service is closed the enquiry is dropped and logged.
func (s *NotificationService) Notify(e model.Enquiry) {
	if s.mailer == nil {
		slog.Warn("email not configured; skipping enquiry notification", "enquiry_id", e.ID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.dropped.Add(1)
		slog.Error("notification service closed; dropping enquiry notification", "enquiry_id", e.ID)
		return
	}
	select {
	case s.queue <- e:
	default:
		s.dropped.Add(1)
		slog.Error("notification queue full; dropping enquiry notification", "enquiry_id", e.ID)
	}
}

// Stats returns the current delivery counters.
func (s *NotificationService) Stats() NotificationStats {
	return NotificationStats{
		Enabled: s.Enabled(),
		Queued:  len(s.queue),
		Sent:    s.sent.Load(),
		Failed:  s.failed.Load(),
		Dropped: s.dropped.Load(),
	}
}

// Close stops accepting work and waits for the queue to drain. If ctx ends
// first, in-flight sends are cancelled and ctx.Err() is returned.
func (s *NotificationService) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrNotificationsClosed
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	select {
	case <-s.done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-s.done
		return ctx.Err()
	}
}

func (s *NotificationService) run() {
	defer close(s.done)
	for e := range s.queue {
		if s.ctx.Err() != nil {
			s.dropped.Add(1)
			continue
		}
		_ = s.deliver(s.ctx, e)
	}
}

// deliver sends both emails concurrently. Neither send waits on or cancels
// the other; the first error (if any) is returned after both finish.
func (s *NotificationService) deliver(ctx context.Context, e model.Enquiry) error {
	details := mailer.Enquiry{Name: e.Name, Email: e.Email, Phone: e.Phone, Details: e.Details}

	var g errgroup.Group
	g.Go(func() error {
		msg, err := mailer.AdminNotification(s.cfg.Inbox, details)
		if err != nil {
			return s.fail(NotificationAdmin, e.ID, s.cfg.Inbox, err)
		}
		return s.send(ctx, NotificationAdmin, e.ID, msg)
	})
	g.Go(func() error {
		msg, err := mailer.Acknowledgment(details)
		if err != nil {
			return s.fail(NotificationAcknowledgment, e.ID, e.Email, err)
		}
		return s.send(ctx, NotificationAcknowledgment, e.ID, msg)
	})
	return g.Wait()
}

func (s *NotificationService) send(ctx context.Context, kind NotificationKind, enquiryID string, msg mailer.Message) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.mailer.Send(ctx, msg)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.cfg.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Warn("notification send failed; retrying", "kind", kind, "enquiry_id", enquiryID, "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		return s.fail(kind, enquiryID, msg.To, err)
	}
	s.sent.Add(1)
	slog.Info("notification sent", "kind", kind, "enquiry_id", enquiryID)
	return nil
}

func (s *NotificationService) fail(kind NotificationKind, enquiryID, recipient string, err error) error {
	s.failed.Add(1)
	nerr := &NotificationError{Kind: kind, EnquiryID: enquiryID, Recipient: recipient, Err: err}
	s.cfg.OnFailure(nerr)
	return nerr
}
