package structs

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrNotFound         = errors.New("no rows in result set")
	ErrUniqueViolation  = errors.New("unique violation error")
	ErrStoreUnavailable = errors.New("store is not configured")
)

// MissingField marks a validation failure so handlers can answer 400
// with the offending field named.
func MissingField(field string) error {
	return fmt.Errorf("missing required field %q: %w", field, ErrBadRequest)
}
