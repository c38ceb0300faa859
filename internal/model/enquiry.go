package model

import "time"

// Enquiry is a lead-capture submission from a prospective client.
// Records are created once and never mutated by this system.
type Enquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnquiryListOptions carries pagination parameters for listing enquiries.
type EnquiryListOptions struct {
	Limit  int
	Offset int
}
