package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeUnauthenticated        Code = "UNAUTHENTICATED"
	CodeInvalidCredential      Code = "INVALID_CREDENTIAL"
	CodeInvalidInput           Code = "INVALID_INPUT"
	CodePayloadTooLarge        Code = "PAYLOAD_TOO_LARGE"
	CodeNotFound               Code = "NOT_FOUND"
	CodeStorageUnavailable     Code = "STORAGE_UNAVAILABLE"
	CodePersistenceUnavailable Code = "PERSISTENCE_UNAVAILABLE"
	CodeInternal               Code = "INTERNAL"
)

// AppError is the unified error contract across layers.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "DocumentService.Upload"
	Message string // safe message, returned to the caller
	Err     error  // wrapped error, log only
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "error"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidInput:
			return http.StatusBadRequest
		case CodeUnauthenticated, CodeInvalidCredential:
			return http.StatusUnauthorized
		case CodeNotFound:
			return http.StatusNotFound
		case CodePayloadTooLarge:
			return http.StatusRequestEntityTooLarge
		default:
			return http.StatusInternalServerError
		}
	}
	// fallback
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrNotFound is the repository-level sentinel for a missing row.
var ErrNotFound = errors.New("not found")
