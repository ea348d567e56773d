package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"Airframe/internal/validation"
)

const MaxBodySize = 1 << 20 // 1MB

// DecodeJSON reads the body, checks it against schema (if any) and decodes it into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, schema *validation.Schema, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if schema != nil {
		if err := schema.ValidateBytes(body); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// BadRequest writes schema details when err is a validation error.
func BadRequest(w http.ResponseWriter, err error) {
	if validation.IsValidationError(err) {
		http.Error(w, "Invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Invalid request payload", http.StatusBadRequest)
}

func WriteJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// StatusWriter remembers the status code written through it.
type StatusWriter struct {
	http.ResponseWriter
	Status int
}

func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, Status: http.StatusOK}
}

func (s *StatusWriter) WriteHeader(code int) {
	s.Status = code
	s.ResponseWriter.WriteHeader(code)
}
