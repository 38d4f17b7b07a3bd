package catalog

import (
	"errors"
	"fmt"
)

// ValidationKind identifies which input rule a value broke
type ValidationKind string

const (
	EmptyField         ValidationKind = "empty_field"
	NameTooLong        ValidationKind = "name_too_long"
	DescriptionTooLong ValidationKind = "description_too_long"
	IDLength           ValidationKind = "id_length"
	IDNotNumeric       ValidationKind = "id_not_numeric"
	CostNotNumeric     ValidationKind = "cost_not_numeric"
	NegativeCost       ValidationKind = "negative_cost"
	EmptySearchTerm    ValidationKind = "empty_search_term"
)

// ValidationError is returned when caller input is rejected before it
// reaches the store
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is, or wraps, a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(kind ValidationKind, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
