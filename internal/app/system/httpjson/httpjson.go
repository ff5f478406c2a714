// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small JSON read/write helpers shared by the API
// feature handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; every API payload here is small.
const maxBodyBytes = 1 << 20

// Write encodes v as the response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// messageBody is the `{"message": ...}` envelope used for outcomes and errors.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Message writes `{"message": msg}` with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, messageBody{Message: msg})
}

// MessageWithDetail writes `{"message": msg, "error": detail}`. Callers pass
// detail only in development mode; it is the raw internal error text.
func MessageWithDetail(w http.ResponseWriter, status int, msg, detail string) {
	Write(w, status, messageBody{Message: msg, Error: detail})
}

// Decode reads a JSON request body into dst, rejecting unknown garbage and
// oversized payloads.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}
