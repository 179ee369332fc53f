package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into the given struct. An absent or
// empty body is reported as ErrEmptyBody so handlers can distinguish it
// from malformed JSON.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
