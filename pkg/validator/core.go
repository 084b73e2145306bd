package validator

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError ties a validation failure to the form field that produced it.
type FieldError struct {
	Field string
	Err   Error
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Err.Error())
}

func (fe FieldError) Unwrap() error {
	return fe.Err
}

// FieldErrors collects the failures of several fields.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe *FieldErrors) Add(field string, err Error) {
	*fe = append(*fe, FieldError{Field: field, Err: err})
}

func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the display messages recorded for field.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Err.Error())
		}
	}
	return messages
}

// Fields returns the failing field names in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Rule is a deferred validation of one named field.
type Rule struct {
	Field string
	Check func() error
}

// Field builds a Rule that validates text against kind with the default Validator.
func Field(name, text string, kind Kind) Rule {
	return defaultValidator.Field(name, text, kind)
}

// Field builds a Rule bound to v.
func (v *Validator) Field(name, text string, kind Kind) Rule {
	return Rule{
		Field: name,
		Check: func() error {
			return v.Validate(text, kind)
		},
	}
}

// Apply runs every rule and returns FieldErrors for the failing ones, or nil.
func Apply(rules ...Rule) error {
	var errs FieldErrors

	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		err := rule.Check()
		if err == nil {
			continue
		}
		verr, ok := AsError(err)
		if !ok {
			verr = ErrInvalidFormat
		}
		errs.Add(rule.Field, verr)
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractFieldErrors extracts FieldErrors from err, or returns nil.
func ExtractFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	return nil
}

func IsFieldErrors(err error) bool {
	return ExtractFieldErrors(err) != nil
}
