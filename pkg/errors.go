package pkg

import "net/http"

// AppError is the application-level error returned by HTTP handlers.
//
// Code is a stable machine-readable identifier (e.g. "REQUEST_NOT_FOUND");
// Message is the human-readable text shown to the caller. Internal errors
// never leak Err to the response body.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"msg"`
	Status  int    `json:"status"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.HTTPStatus,
	}
}

// Common constructors following the lifecycle error taxonomy.

func NotFound(code, message string) *AppError {
	return NewDomainErrorSimple(code, message, http.StatusNotFound)
}

func Conflict(code, message string) *AppError {
	return NewDomainErrorSimple(code, message, http.StatusConflict)
}

func Validation(code, message string) *AppError {
	return NewDomainErrorSimple(code, message, http.StatusBadRequest)
}

func Forbidden(code, message string) *AppError {
	return NewDomainErrorSimple(code, message, http.StatusForbidden)
}

func Internal(code, message string, err error) *AppError {
	return NewDomainError(code, message, err, http.StatusInternalServerError)
}
