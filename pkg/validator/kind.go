package validator

import (
	"fmt"
	"strings"
)

type kindID uint8

const (
	kindEmail kindID = iota + 1
	kindName
	kindSurname
	kindPhone
	kindPassword
	kindPostalCode
	kindNationalID
	kindCustom
)

const customPrefix = "custom:"

var kindNames = map[kindID]string{
	kindEmail:      "email",
	kindName:       "name",
	kindSurname:    "surname",
	kindPhone:      "phone",
	kindPassword:   "password",
	kindPostalCode: "postal_code",
	kindNationalID: "national_id",
}

// Kind selects the rule a value is checked against.
// The zero Kind is invalid; use one of the predefined kinds or Custom.
type Kind struct {
	id      kindID
	pattern string
}

// Built-in kinds.
var (
	Email      = Kind{id: kindEmail}
	Name       = Kind{id: kindName}
	Surname    = Kind{id: kindSurname}
	Phone      = Kind{id: kindPhone}
	Password   = Kind{id: kindPassword}
	PostalCode = Kind{id: kindPostalCode}
	NationalID = Kind{id: kindNationalID}
)

// Custom returns a kind that matches values against a caller-supplied regular
// expression (RE2 syntax). Matching is case-insensitive.
func Custom(pattern string) Kind {
	return Kind{id: kindCustom, pattern: pattern}
}

// IsCustom reports whether k was built with Custom.
func (k Kind) IsCustom() bool {
	return k.id == kindCustom
}

// Pattern returns the custom pattern, or an empty string for built-in kinds.
func (k Kind) Pattern() string {
	return k.pattern
}

// String returns the canonical kind name; ParseKind accepts the same format.
func (k Kind) String() string {
	if k.id == kindCustom {
		return customPrefix + k.pattern
	}
	if name, ok := kindNames[k.id]; ok {
		return name
	}
	return "invalid"
}

// ParseKind converts a kind name back into a Kind.
// Names are case-insensitive; "custom:<pattern>" keeps the pattern verbatim.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if len(s) >= len(customPrefix) && strings.EqualFold(s[:len(customPrefix)], customPrefix) {
		return Custom(s[len(customPrefix):]), nil
	}

	name := strings.ToLower(s)
	for id, n := range kindNames {
		if n == name {
			return Kind{id: id}, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k.id == 0 {
		return nil, fmt.Errorf("%w: zero value", ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
