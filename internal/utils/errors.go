package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// Pipeline failure classes. Every one of these is recovered at the
	// webhook boundary and mapped to the same empty acknowledgment; the
	// codes exist so logs and tests can tell the stages apart.
	CodeRecordingUnavailable Code = "RECORDING_UNAVAILABLE"
	CodeTranscriptionFailed  Code = "TRANSCRIPTION_FAILED"
	CodePersistenceFailure   Code = "PERSISTENCE_FAILURE"
	CodeDeletionFailure      Code = "DELETION_FAILURE"

	// Management-surface codes. These do surface as HTTP statuses.
	CodeInvalidArgument      Code = "INVALID_ARGUMENT"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeNotFound             Code = "NOT_FOUND"
	CodeMissingConfiguration Code = "MISSING_CONFIGURATION"
	CodeInternal             Code = "INTERNAL"
)

// AppError is the unified error contract across layers.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "PipelineService.Process"
	Message string // safe message
	Err     error  // wrapped error
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

// ErrCode extracts the AppError code, or CodeInternal for foreign errors.
func ErrCode(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// HTTPStatus maps management-surface errors to response statuses. Pipeline
// codes never reach an HTTP response; if one does leak here it is a bug and
// reads as a 500.
func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeNotFound:
			return http.StatusNotFound
		case CodeMissingConfiguration:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
