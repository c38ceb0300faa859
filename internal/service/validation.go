package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/onamkulam/interiors/internal/model"
)

const (
	maxNameLength    = 60
	maxPhoneLength   = 20
	maxDetailsLength = 1000
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// ValidateEnquiry normalizes e in place (surrounding whitespace is trimmed)
// and checks the stored-record constraints field by field.
func ValidateEnquiry(e *model.Enquiry) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Details = strings.TrimSpace(e.Details)

	switch {
	case e.Name == "":
		return &ValidationError{Field: "name", Message: "Please provide a name"}
	case utf8.RuneCountInString(e.Name) > maxNameLength:
		return &ValidationError{Field: "name", Message: "Name cannot be more than 60 characters"}
	case e.Email == "":
		return &ValidationError{Field: "email", Message: "Please provide an email"}
	case !emailPattern.MatchString(e.Email):
		return &ValidationError{Field: "email", Message: "Please provide a valid email address"}
	case utf8.RuneCountInString(e.Phone) > maxPhoneLength:
		return &ValidationError{Field: "phone", Message: "Phone number cannot be more than 20 characters"}
	case utf8.RuneCountInString(e.Details) > maxDetailsLength:
		return &ValidationError{Field: "details", Message: "Details cannot be more than 1000 characters"}
	}
	return nil
}
