// Package enquiryform drives the three-step enquiry dialog: name, then
// email, then phone and project details, followed by a single submission.
package enquiryform

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/onamkulam/interiors/internal/model"
)

// Step is the visible page of the dialog, 1 to 3.
type Step int

const (
	StepName Step = iota + 1
	StepEmail
	StepDetails
)

// Status is the outcome of the last submission.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSucceeded
	// StatusFailed covers every failure; the dialog does not tell a
	// rejected enquiry from an unreachable server.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEditing:
		return "editing"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrStepIncomplete = errors.New("enquiryform: current step is incomplete")
	ErrNotFinalStep   = errors.New("enquiryform: submit is only allowed on the last step")
	ErrSubmitting     = errors.New("enquiryform: submission already in flight")
)

// Data is what the visitor has typed so far.
type Data struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Details string `json:"details,omitempty"`
}

// Submitter delivers a completed enquiry.
type Submitter interface {
	Submit(ctx context.Context, d Data) (*model.Enquiry, error)
}

// Form is the dialog state. It is safe for concurrent use.
type Form struct {
	submitter Submitter

	mu     sync.Mutex
	step   Step
	data   Data
	status Status
	record *model.Enquiry
	err    error
}

// New returns an empty form on the first step.
func New(s Submitter) *Form {
	return &Form{submitter: s, step: StepName}
}

func (f *Form) SetName(v string) {
	f.mu.Lock()
	f.data.Name = v
	f.mu.Unlock()
}

func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	f.data.Email = v
	f.mu.Unlock()
}

func (f *Form) SetPhone(v string) {
	f.mu.Lock()
	f.data.Phone = v
	f.mu.Unlock()
}

func (f *Form) SetDetails(v string) {
	f.mu.Lock()
	f.data.Details = v
	f.mu.Unlock()
}

// Next advances one step. Leaving the name step needs a name, leaving the
// email step needs an email. Format checks happen on the server.
func (f *Form) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepName:
		if strings.TrimSpace(f.data.Name) == "" {
			return ErrStepIncomplete
		}
	case StepEmail:
		if strings.TrimSpace(f.data.Email) == "" {
			return ErrStepIncomplete
		}
	default:
		return nil
	}
	f.step++
	return nil
}

// Back returns to the previous step, keeping what was typed.
func (f *Form) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > StepName {
		f.step--
	}
}

// Submit sends the enquiry. The returned error is the submitter's; the form
// itself only records StatusFailed.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepDetails {
		f.mu.Unlock()
		return ErrNotFinalStep
	}
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.status = StatusSubmitting
	data := f.data
	f.mu.Unlock()

	rec, err := f.submitter.Submit(ctx, data)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	if err != nil {
		f.status = StatusFailed
		return err
	}
	f.status = StatusSucceeded
	f.record = rec
	return nil
}

// Reset clears the form back to an empty first step.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepName
	f.data = Data{}
	f.status = StatusEditing
	f.record = nil
	f.err = nil
}

// Step returns the current step.
func (f *Form) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Data returns a copy of the entered values.
func (f *Form) Data() Data {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Status returns the submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Record returns the stored enquiry after a successful submit.
func (f *Form) Record() *model.Enquiry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// Err returns the error of the last failed submit.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
