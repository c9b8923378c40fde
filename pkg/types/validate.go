package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// entityValidator checks struct tags on entities at the deserialization
// boundary. Shared instance; validator.Validate is safe for concurrent use.
var entityValidator = validator.New()

// validateEntity runs struct-tag validation and maps any failure to
// ErrMalformedState so callers at the storage boundary can recover uniformly.
func validateEntity(v any) error {
	if err := entityValidator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return nil
}
