package client

import (
	"errors"
	"fmt"
	"net/http"
)

// API status codes carried in the response envelope.
const (
	StatusOK             = 0
	StatusBadParameter   = 102
	StatusAlreadyExists  = 103
	StatusPasswordPolicy = 104
	StatusInvalidToken   = 108
)

// StatusError is a domain failure reported by the API: a parseable envelope
// with a non-zero status.
type StatusError struct {
	Code       int
	Message    string
	HTTPStatus int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ppob api: status %d: %s", e.Code, e.Message)
}

// AsStatusError unwraps err into a StatusError, or nil.
func AsStatusError(err error) *StatusError {
	var se *StatusError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

// IsSessionError reports whether err means the bearer token is absent,
// invalid or expired, so re-authentication rather than a retry is the fix.
func IsSessionError(err error) bool {
	se := AsStatusError(err)
	if se == nil {
		return false
	}
	return se.Code == StatusInvalidToken || se.HTTPStatus == http.StatusUnauthorized
}
