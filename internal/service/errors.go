package service

import "fmt"

// ValidationError reports a malformed or missing enquiry field. It is
// detected before any persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError wraps a failed write to the enquiry store. Nothing is
// retried; the caller sees a generic message.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist enquiry: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationKind distinguishes the two emails sent per enquiry.
type NotificationKind string

const (
	NotificationAdmin          NotificationKind = "admin"
	NotificationAcknowledgment NotificationKind = "acknowledgment"
)

// NotificationError records an email that could not be delivered after all
// retries. It never reaches the HTTP caller.
type NotificationError struct {
	Kind      NotificationKind
	EnquiryID string
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("send %s notification for enquiry %s to %s: %v", e.Kind, e.EnquiryID, e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
