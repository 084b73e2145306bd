package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formfield/pkg/validator"
)

var (
	ErrInvalidForm = errors.New("invalid form file")
	ErrEmptyForm   = errors.New("form has no fields")
)

// formFile is the on-disk form description. JSON documents decode too,
// since JSON is a subset of YAML.
type formFile struct {
	Fields []formField `yaml:"fields"`
}

type formField struct {
	Name  string  `yaml:"name"`
	Kind  string  `yaml:"kind"`
	Value *string `yaml:"value"`
}

type namedEntry struct {
	Name  string
	Entry validator.FormEntry
}

func decodeForm(r io.Reader) ([]namedEntry, error) {
	var f formFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyForm
		}
		return nil, errors.Join(ErrInvalidForm, err)
	}
	if len(f.Fields) == 0 {
		return nil, ErrEmptyForm
	}

	entries := make([]namedEntry, 0, len(f.Fields))
	for i, field := range f.Fields {
		kind, err := validator.ParseKind(field.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d (%s): %w", ErrInvalidForm, i+1, field.Name, err)
		}
		if kind.IsCustom() {
			if _, err := validator.CompilePattern(kind.Pattern()); err != nil {
				return nil, fmt.Errorf("%w: field %d (%s): %w", ErrInvalidForm, i+1, field.Name, err)
			}
		}

		name := field.Name
		if name == "" {
			name = fmt.Sprintf("field_%d", i+1)
		}
		var text string
		if field.Value != nil {
			text = *field.Value
		}
		entries = append(entries, namedEntry{
			Name:  name,
			Entry: validator.FormEntry{Text: text, Kind: kind},
		})
	}
	return entries, nil
}
