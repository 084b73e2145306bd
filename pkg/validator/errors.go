package validator

import (
	"errors"
	"fmt"
)

// Code identifies the rule failure carried by an Error.
type Code uint8

const (
	CodeEmptyField Code = iota + 1
	CodeInvalidFormat
	CodeTooShort
	CodeTooLong
	CodeInvalidCharacters
	CodeInvalidEmail
	CodeWeakPassword
)

// String returns the snake_case name used in logs and translation keys.
func (c Code) String() string {
	switch c {
	case CodeEmptyField:
		return "empty_field"
	case CodeInvalidFormat:
		return "invalid_format"
	case CodeTooShort:
		return "too_short"
	case CodeTooLong:
		return "too_long"
	case CodeInvalidCharacters:
		return "invalid_characters"
	case CodeInvalidEmail:
		return "invalid_email"
	case CodeWeakPassword:
		return "weak_password"
	default:
		return "unknown"
	}
}

// Error is a single field validation failure.
// Limit is only meaningful for CodeTooShort and CodeTooLong.
// Error values are comparable, so errors.Is works against the sentinels below
// and against values built with TooShort and TooLong.
type Error struct {
	Code  Code
	Limit int
}

// Validation failures returned by Validate.
var (
	ErrEmptyField        = Error{Code: CodeEmptyField}
	ErrInvalidFormat     = Error{Code: CodeInvalidFormat}
	ErrInvalidCharacters = Error{Code: CodeInvalidCharacters}
	ErrInvalidEmail      = Error{Code: CodeInvalidEmail}
	ErrWeakPassword      = Error{Code: CodeWeakPassword}
)

// Configuration errors. These never come out of Validate.
var (
	// ErrUnknownKind is returned by ParseKind for names that are not a known kind.
	ErrUnknownKind = errors.New("unknown validation kind")

	// ErrInvalidPattern is returned by CompilePattern when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("invalid validation pattern")
)

// TooShort reports a value shorter than min characters.
func TooShort(min int) Error {
	return Error{Code: CodeTooShort, Limit: min}
}

// TooLong reports a value longer than max characters.
func TooLong(max int) Error {
	return Error{Code: CodeTooLong, Limit: max}
}

// Error returns the display message, suitable for showing to end users verbatim.
func (e Error) Error() string {
	switch e.Code {
	case CodeEmptyField:
		return "This field is required"
	case CodeInvalidFormat:
		return "The format is not valid"
	case CodeTooShort:
		return fmt.Sprintf("Must have at least %d characters", e.Limit)
	case CodeTooLong:
		return fmt.Sprintf("Must not exceed %d characters", e.Limit)
	case CodeInvalidCharacters:
		return "Contains characters that are not allowed"
	case CodeInvalidEmail:
		return "The email address is not valid"
	case CodeWeakPassword:
		return "The password must have at least 8 characters, one uppercase letter, one lowercase letter and one number"
	default:
		return "validation failed"
	}
}

// TranslationKey returns an i18n lookup key for the failure.
func (e Error) TranslationKey() string {
	return "validation." + e.Code.String()
}

// TranslationValues returns the placeholders referenced by the translated message.
func (e Error) TranslationValues() map[string]any {
	switch e.Code {
	case CodeTooShort:
		return map[string]any{"min": e.Limit}
	case CodeTooLong:
		return map[string]any{"max": e.Limit}
	default:
		return nil
	}
}

// AsError extracts an Error from err. The second result is false when err
// does not wrap a validation failure.
func AsError(err error) (Error, bool) {
	var verr Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return Error{}, false
}
