package mailchimp

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ErrorKind classifies a failed invocation.
type ErrorKind string

const (
	// UnknownOperation means the (group, name) pair is not registered.
	UnknownOperation ErrorKind = "UnknownOperation"
	// InvalidParams means the params did not match the declared shape. The
	// transport is never contacted.
	InvalidParams ErrorKind = "InvalidParams"
	// TransportFailure covers connection errors, timeouts and non-2xx
	// responses that carry no Mailchimp error envelope.
	TransportFailure ErrorKind = "TransportFailure"
	// RemoteError means Mailchimp answered with an error envelope.
	RemoteError ErrorKind = "RemoteError"
	// MalformedResponse means the payload did not match the declared result
	// shape.
	MalformedResponse ErrorKind = "MalformedResponse"
	// DuplicateOperation is raised while populating a registry.
	DuplicateOperation ErrorKind = "DuplicateOperation"
)

// ErrRegistrySealed is returned by Register once the registry is sealed.
var ErrRegistrySealed = errors.New("registry is sealed")

// Error is the failure delivered to a completion.
//
// Status, Name, Code and Message mirror the Mailchimp error envelope and are
// only set for RemoteError. Fields is only set for InvalidParams and
// MalformedResponse.
type Error struct {
	Kind      ErrorKind
	Group     string
	Operation string

	Status  string
	Name    string
	Code    int
	Message string

	// StatusCode is the HTTP status, when a response was received.
	StatusCode int
	Fields     field.ErrorList
	Err        error
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("mailchimp %s/%s", e.Group, e.Operation)
	switch e.Kind {
	case RemoteError:
		return fmt.Sprintf("%s: %s (code %d): %s", prefix, e.Name, e.Code, e.Message)
	case InvalidParams, MalformedResponse:
		if len(e.Fields) > 0 {
			return fmt.Sprintf("%s: %s: %s", prefix, e.Kind, e.Fields.ToAggregate().Error())
		}
	case TransportFailure:
		if e.Err == nil && e.StatusCode != 0 {
			return fmt.Sprintf("%s: %s: unexpected status %d: %s", prefix, e.Kind, e.StatusCode, e.Message)
		}
	}
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s: %s", prefix, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RequestError returns the Mailchimp error envelope carried by a RemoteError.
func (e *Error) RequestError() RequestError {
	return RequestError{Status: e.Status, Name: e.Name, Code: e.Code, Error: e.Message}
}

func isErrorKind(err error, kind ErrorKind) bool {
	var mcErr *Error
	if errors.As(err, &mcErr) {
		return mcErr.Kind == kind
	}
	return false
}

// IsUnknownOperation checks if the error reports an unregistered operation.
func IsUnknownOperation(err error) bool {
	return isErrorKind(err, UnknownOperation)
}

// IsInvalidParams checks if the error reports params that failed validation.
func IsInvalidParams(err error) bool {
	return isErrorKind(err, InvalidParams)
}

// IsTransportFailure checks if the error reports a failed network exchange.
func IsTransportFailure(err error) bool {
	return isErrorKind(err, TransportFailure)
}

// IsRemoteError checks if the error carries a Mailchimp error envelope.
func IsRemoteError(err error) bool {
	return isErrorKind(err, RemoteError)
}

// IsMalformedResponse checks if the error reports a payload that did not
// match the declared result shape.
func IsMalformedResponse(err error) bool {
	return isErrorKind(err, MalformedResponse)
}

// IsDuplicateOperation checks if the error reports a registry conflict.
func IsDuplicateOperation(err error) bool {
	return isErrorKind(err, DuplicateOperation)
}

// IsRemoteCode checks if the error is a RemoteError with the given Mailchimp
// error code, e.g. 214 for List_AlreadySubscribed.
func IsRemoteCode(err error, code int) bool {
	var mcErr *Error
	if errors.As(err, &mcErr) {
		return mcErr.Kind == RemoteError && mcErr.Code == code
	}
	return false
}

// UnhandledFailure is sent by the Rethrow policy when an invocation fails
// and its completion has no OnFailure handler.
type UnhandledFailure struct {
	Invocation uuid.UUID
	Err        *Error
}

func (u *UnhandledFailure) Error() string {
	return "unhandled mailchimp failure: " + u.Err.Error()
}

func (u *UnhandledFailure) Unwrap() error {
	return u.Err
}
