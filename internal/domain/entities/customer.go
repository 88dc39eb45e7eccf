package entities

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Customer is a directory record owned by the external backend. The POS only
// ever holds a reference to the currently selected customer.

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
}

// NewCustomerInput carries the fields of a customer creation request. It is
// validated locally before any call to the directory is attempted.
type NewCustomerInput struct {
	Name    string
	Phone   string
	Address string
	Email   string
}

var (
	// Digits only, 8 to 15 of them.
	phonePattern = regexp.MustCompile(`^[0-9]{8,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError describes a single invalid field of a customer creation request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every invalid field of a creation request, so
// the cashier can fix the whole form in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid customer: " + strings.Join(msgs, "; ")
}

// Validate checks every field and returns a *ValidationError listing all
// failures, or nil when the input is acceptable. Email is optional.
func (in NewCustomerInput) Validate() error {
	var fields []FieldError

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	} else if utf8.RuneCountInString(name) < 3 {
		fields = append(fields, FieldError{Field: "name", Message: "name must be at least 3 characters"})
	}

	if in.Phone == "" {
		fields = append(fields, FieldError{Field: "phone", Message: "phone is required"})
	} else if !phonePattern.MatchString(in.Phone) {
		fields = append(fields, FieldError{Field: "phone", Message: "phone must be 8-15 digits"})
	}

	if strings.TrimSpace(in.Address) == "" {
		fields = append(fields, FieldError{Field: "address", Message: "address is required"})
	}

	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "email format is invalid"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Normalized returns a copy with whitespace trimmed from the free-text fields.
func (in NewCustomerInput) Normalized() NewCustomerInput {
	return NewCustomerInput{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
		Email:   strings.TrimSpace(in.Email),
	}
}
