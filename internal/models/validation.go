package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var matchValidator = validator.New()

// ValidateMatch checks caller-supplied match input against its struct tags.
// The engine itself tolerates bad input; this is for boundaries that want to reject it.
func ValidateMatch(m MatchInput) error {
	err := matchValidator.Struct(m)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidMatch, err)
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldError.Namespace(), fieldError.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidMatch, strings.Join(fields, ", "))
}
