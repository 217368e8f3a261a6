// Package httperr defines the API's error body shape and helpers for
// translating binding failures into it.
package httperr

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Response is the JSON error body every endpoint returns.
type Response struct {
	Status int               `json:"-"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FieldErrors flattens binding validation failures into a field to rule map
// for the response's fields entry.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
