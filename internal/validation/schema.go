package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Error lists every schema violation found in a document.
type Error struct {
	Details []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

type Schema struct {
	s *gojsonschema.Schema
}

// MustCompile panics on a malformed schema; schemas are package constants.
func MustCompile(src string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("validation: compile schema: %v", err))
	}
	return &Schema{s: s}
}

// ValidateBytes checks a raw JSON document.
func (s *Schema) ValidateBytes(doc []byte) error {
	return s.validate(gojsonschema.NewBytesLoader(doc))
}

// ValidateValue checks a Go value (struct with json tags, map, ...).
func (s *Schema) ValidateValue(v any) error {
	return s.validate(gojsonschema.NewGoLoader(v))
}

func (s *Schema) validate(l gojsonschema.JSONLoader) error {
	res, err := s.s.Validate(l)
	if err != nil {
		return &Error{Details: []string{fmt.Sprintf("malformed document: %v", err)}}
	}
	if res.Valid() {
		return nil
	}
	verr := &Error{}
	for _, d := range res.Errors() {
		verr.Details = append(verr.Details, d.String())
	}
	return verr
}

func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}
