package domain

import "strings"

// FieldError describes a single input violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full, ordered set of violations for one request.
// It is never partial: all failing fields are collected before returning.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}
