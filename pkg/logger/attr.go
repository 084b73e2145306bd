package logger

import (
	"fmt"
	"log/slog"
)

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RunID records the invocation identifier under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Field records a form field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records a validation kind under "kind".
func Kind(kind fmt.Stringer) slog.Attr {
	return slog.String("kind", kind.String())
}

// Passed records a validation result under "passed".
func Passed(ok bool) slog.Attr {
	return slog.Bool("passed", ok)
}
