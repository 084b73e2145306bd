package validator

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Validator checks field values against a Kind.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for diagnostics such as custom patterns
// that fail to compile. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator. Without options it logs nothing.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// Validate checks text against kind and returns nil or an Error.
// Leading and trailing whitespace is ignored; a blank text fails with
// ErrEmptyField whatever the kind.
func (v *Validator) Validate(text string, kind Kind) error {
	value := normalize(text)
	if value == "" {
		v.report(kind, ErrEmptyField)
		return ErrEmptyField
	}

	var err error
	switch kind.id {
	case kindEmail:
		err = checkEmail(value)
	case kindName:
		err = checkName(value)
	case kindSurname:
		err = checkSurname(value)
	case kindPhone:
		err = checkPhone(value)
	case kindPassword:
		err = checkPassword(value)
	case kindPostalCode:
		err = checkPostalCode(value)
	case kindNationalID:
		err = checkNationalID(value)
	case kindCustom:
		err = v.checkCustom(value, kind.pattern)
	default:
		err = ErrInvalidFormat
	}

	v.report(kind, err)
	return err
}

// ValidateOptional is Validate for optional input; a nil text is treated as
// a missing value and fails with ErrEmptyField.
func (v *Validator) ValidateOptional(text *string, kind Kind) error {
	if text == nil {
		v.report(kind, ErrEmptyField)
		return ErrEmptyField
	}
	return v.Validate(*text, kind)
}

// checkCustom treats a pattern that does not compile as a non-match.
func (v *Validator) checkCustom(value, pattern string) error {
	re, err := CompilePattern(pattern)
	if err != nil {
		v.logger.LogAttrs(context.Background(), slog.LevelWarn, "custom pattern rejected",
			slog.String("pattern", pattern),
			slog.Any("error", err),
		)
		return ErrInvalidFormat
	}
	if !re.MatchString(value) {
		return ErrInvalidFormat
	}
	return nil
}

func (v *Validator) report(kind Kind, err error) {
	ctx := context.Background()
	if !v.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if err == nil {
		v.logger.LogAttrs(ctx, slog.LevelDebug, "field valid", slog.String("kind", kind.String()))
		return
	}
	code := "unknown"
	if verr, ok := AsError(err); ok {
		code = verr.Code.String()
	}
	v.logger.LogAttrs(ctx, slog.LevelDebug, "field invalid",
		slog.String("kind", kind.String()),
		slog.String("code", code),
	)
}

// normalize trims surrounding whitespace. Rules see the text otherwise unchanged.
func normalize(text string) string {
	return strings.TrimSpace(text)
}

// Validate checks text against kind using the default Validator.
func Validate(text string, kind Kind) error {
	return defaultValidator.Validate(text, kind)
}

// ValidateOptional checks an optional text using the default Validator.
func ValidateOptional(text *string, kind Kind) error {
	return defaultValidator.ValidateOptional(text, kind)
}
