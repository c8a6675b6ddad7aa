package exceptions

import (
	"fmt"
	"medadmin-service/internal/pkg/constvars"
	"runtime"
)

// Kind classifies an error by how callers are expected to react to it.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInfrastructure Kind = "infrastructure"
	KindNetwork        Kind = "network"
)

type CustomError struct {
	StatusCode    int        `json:"-"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Code          string     `json:"code,omitempty"`
	Kind          Kind       `json:"-"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// BuildNewCustomError wraps err and records the caller location. When err is
// already a CustomError its trail of locations is preserved.
func BuildNewCustomError(err error, statusCode int, kind Kind, code, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	if existing, ok := err.(*CustomError); ok {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Code:          code,
		Kind:          kind,
		DevMessage:    devMessage,
		Locations:     []Location{location},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// KindForStatus maps an HTTP status to the error taxonomy. Status 0 means the
// server was never reached.
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == 0:
		return KindNetwork
	case statusCode == constvars.StatusBadRequest || statusCode == constvars.StatusUnprocessableEntity:
		return KindValidation
	case statusCode == constvars.StatusUnauthorized:
		return KindAuthentication
	case statusCode == constvars.StatusForbidden:
		return KindAuthorization
	case statusCode == constvars.StatusNotFound || statusCode == constvars.StatusGone:
		return KindNotFound
	case statusCode == constvars.StatusConflict:
		return KindConflict
	default:
		return KindInfrastructure
	}
}
