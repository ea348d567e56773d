package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sizeSchema = `{
	"type": "object",
	"required": ["size"],
	"properties": {
		"size": {"type": "number", "minimum": 150, "maximum": 650, "multipleOf": 50}
	}
}`

func TestSchema_ValidateBytes(t *testing.T) {
	s := MustCompile(sizeSchema)
	assert.NoError(t, s.ValidateBytes([]byte(`{"size": 450}`)))

	err := s.ValidateBytes([]byte(`{"size": 475}`))
	require.Error(t, err)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Details, 1)

	err = s.ValidateBytes([]byte(`{}`))
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "size")

	assert.True(t, IsValidationError(s.ValidateBytes([]byte(`{not json`))))
}

func TestSchema_ValidateValue(t *testing.T) {
	s := MustCompile(sizeSchema)
	type doc struct {
		Size float64 `json:"size"`
	}
	assert.NoError(t, s.ValidateValue(doc{Size: 650}))
	assert.Error(t, s.ValidateValue(doc{Size: 700}))
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`{"type": 12}`) })
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", &Error{Details: []string{"x"}})))
}
