// Package backend is the gateway's client side of the clinic REST API:
// the response envelope contract, the shared authenticated HTTP client,
// and the typed endpoint calls built on both.
package backend

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultFailureMessage is surfaced when the backend flags a failure but
// sends no message of its own.
const DefaultFailureMessage = "La solicitud no pudo ser procesada"

// Envelope is the fixed shape of every backend response. Data stays raw
// until Unwrap has proven success, so a failed response can never leak a
// half-usable payload into the caller.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// RequestFailedError is a business failure reported inside a well-formed
// envelope (success=false). Its text is the backend's message verbatim.
type RequestFailedError struct {
	Message string
}

func (e *RequestFailedError) Error() string { return e.Message }

// Unwrap returns the payload when the envelope reports success, and a
// *RequestFailedError carrying the backend's message otherwise. It never
// looks at HTTP status codes; those belong to the transport layer.
func (e *Envelope) Unwrap() (json.RawMessage, error) {
	if !e.Success {
		msg := e.Message
		if msg == "" {
			msg = DefaultFailureMessage
		}
		return nil, &RequestFailedError{Message: msg}
	}
	return e.Data, nil
}

// Decode reads an envelope from r, unwraps it, and unmarshals the payload
// into T. A malformed envelope or payload fails here, at the boundary,
// instead of propagating zero values into the handlers.
func Decode[T any](r io.Reader) (T, error) {
	var zero T

	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return zero, fmt.Errorf("decode envelope: %w", err)
	}

	data, err := env.Unwrap()
	if err != nil {
		return zero, err
	}

	var out T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, fmt.Errorf("decode payload: %w", err)
		}
	}
	return out, nil
}
