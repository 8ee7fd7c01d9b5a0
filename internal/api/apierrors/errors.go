package apierrors

import (
	"encoding/json"
	"net/http"
)

// Code is the application-level status code carried in the meta block. The
// values predate this service and are kept for wire compatibility with
// existing wallet clients, so they do not line up with HTTP status codes.
type Code int

const (
	CodeOK                    Code = 200
	CodeNotSupported          Code = 10
	CodeSuspendedToken        Code = 20
	CodeDataNotExists         Code = 30
	CodeDataConflict          Code = 40
	CodeResponseLimitExceeded Code = 86
	CodeInvalidParameter      Code = 88
	CodeUnauthorized          Code = 401
	CodeUnknown               Code = 500
	CodeServiceUnavailable    Code = 503
)

// Meta is the status block embedded in every response
type Meta struct {
	Code        Code        `json:"code"`
	Message     string      `json:"message"`
	Description interface{} `json:"description,omitempty"`
}

// Envelope is the top-level response shape
type Envelope struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// APIError pairs a meta block with the HTTP status it maps to
type APIError struct {
	Meta       Meta
	HTTPStatus int
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e.Meta)
	return string(jsonErr)
}

// Envelope returns the error as a response body
func (e *APIError) Envelope() Envelope {
	return Envelope{Meta: e.Meta}
}

// Error constructors for the response taxonomy
func NewInvalidParameter(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeInvalidParameter, Message: "Invalid Parameter", Description: description},
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewSuspendedToken(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeSuspendedToken, Message: "Suspended Token", Description: description},
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotSupported(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeNotSupported, Message: "Not Supported", Description: description},
		HTTPStatus: http.StatusNotFound,
	}
}

func NewDataNotExists(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeDataNotExists, Message: "Data Not Exists", Description: description},
		HTTPStatus: http.StatusNotFound,
	}
}

func NewDataConflict(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeDataConflict, Message: "Data Conflict", Description: description},
		HTTPStatus: http.StatusConflict,
	}
}

func NewResponseLimitExceeded(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeResponseLimitExceeded, Message: "Response Limit Exceeded", Description: description},
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewUnauthorized(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeUnauthorized, Message: "Unauthorized", Description: description},
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewServiceUnavailable(description interface{}) *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeServiceUnavailable, Message: "Service Unavailable", Description: description},
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func NewInternalError() *APIError {
	return &APIError{
		Meta:       Meta{Code: CodeUnknown, Message: "Internal Server Error"},
		HTTPStatus: http.StatusInternalServerError,
	}
}
