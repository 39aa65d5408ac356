// Package request decodes forum request bodies.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"qa-forum/internal/domain/entity"
)

// DecodeJSON decodes the request body into v.
//
// An empty body leaves v untouched. Malformed JSON and fields of the wrong type
// are validation errors. A body over the size limit keeps its *http.MaxBytesError.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &entity.ValidationError{Field: typeErr.Field, Message: "must be a " + kindName(typeErr)}
	}
	return &entity.ValidationError{Field: "body", Message: "must be a JSON object"}
}

func kindName(err *json.UnmarshalTypeError) string {
	if err.Type == nil {
		return "valid value"
	}
	return err.Type.Kind().String()
}
