package week

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned for a weekday or category outside the fixed sets.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidIndex is returned when a meal position does not exist.
	ErrInvalidIndex = errors.New("invalid meal index")
)

// ValidationError reports user input that was rejected without touching the document.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func checkKeys(d Weekday, c Category) error {
	if !d.Valid() {
		return fmt.Errorf("%w: weekday %d", ErrInvalidKey, int(d))
	}
	if !c.Valid() {
		return fmt.Errorf("%w: category %d", ErrInvalidKey, int(c))
	}
	return nil
}
