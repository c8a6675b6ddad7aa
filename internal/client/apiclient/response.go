package apiclient

import (
	"fmt"
	"medadmin-service/internal/pkg/exceptions"
)

// Response is the uniform result of every call. Either Data or Error is set;
// when Status is 0 the server was never reached and only Error is set.
// Kind classifies a failure and is empty on success.
type Response[T any] struct {
	Data   *T
	Error  string
	Code   string
	Status int
	Kind   exceptions.Kind
	Raw    []byte
}

type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d [%s]: %s", e.Status, e.Code, e.Message)
}

// Err converts a failed response into an error, nil on success.
func (r Response[T]) Err() error {
	if r.Error == "" {
		return nil
	}
	return &Error{Status: r.Status, Code: r.Code, Message: r.Error}
}

func (r Response[T]) OK() bool {
	return r.Error == ""
}

func failure[T any](status int, code, message string) Response[T] {
	return Response[T]{Error: message, Code: code, Status: status, Kind: exceptions.KindForStatus(status)}
}

// withKind overrides the kind for failures that happen locally before or
// after the round trip.
func (r Response[T]) withKind(kind exceptions.Kind) Response[T] {
	r.Kind = kind
	return r
}
