// Package validation carries field-level request validation failures
// from services up to the HTTP layer.
package validation

// FieldErrors maps a payload field to a human-readable message. It is
// serialized as-is in 400 responses.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation error"
}

// New returns a FieldErrors holding a single field failure.
func New(field, message string) FieldErrors {
	return FieldErrors{field: message}
}
