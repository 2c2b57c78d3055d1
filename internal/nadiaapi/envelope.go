package nadiaapi

//
// envelope.go - the {success, data, message} response envelope.
//

import (
	"bytes"
	"encoding/json"

	"github.com/nadia-api/nadia-cli/internal/httpclientx"
)

// Envelope is the conventional response shape returned by the API.
//
// Missing keys decode to their zero value.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
}

// Result is the outcome of an API operation: either a success carrying a
// typed payload or a failure carrying the server message.
//
// Construct using [Success] or [Failure].
type Result[T any] struct {
	ok      bool
	data    T
	message string
}

// Success returns a successful [Result] carrying data.
func Success[T any](data T, message string) Result[T] {
	return Result[T]{ok: true, data: data, message: message}
}

// Failure returns a failed [Result] carrying message.
func Failure[T any](message string) Result[T] {
	return Result[T]{ok: false, message: message}
}

// OK returns whether the envelope reported success.
func (r Result[T]) OK() bool {
	return r.ok
}

// Data returns the payload. A failed result always returns the zero value.
func (r Result[T]) Data() T {
	return r.data
}

// Message returns the server message.
func (r Result[T]) Message() string {
	return r.message
}

// DecodeResult parses raw as an [Envelope] and decodes its data as T.
//
// A `success: false` envelope is a [Failure] and never an error, regardless
// of the data it carries. The error, if any, is an [*httpclientx.ErrParseFailed].
func DecodeResult[T any](raw []byte) (Result[T], error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Result[T]{}, &httpclientx.ErrParseFailed{Err: err}
	}
	if !envelope.Success {
		return Failure[T](envelope.Message), nil
	}
	var data T
	if len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return Result[T]{}, &httpclientx.ErrParseFailed{Err: err}
		}
	}
	return Success(data, envelope.Message), nil
}
