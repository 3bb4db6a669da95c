package service

import (
	"fmt"
)

// TransportError is a failed exchange with the inference service: either the
// request never completed (Cause set) or the service answered with a non-2xx status.
type TransportError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		detail := e.Body
		if detail == "" && e.Cause != nil {
			detail = e.Cause.Error()
		}
		return fmt.Sprintf("Server error: %d - %s", e.StatusCode, detail)
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "inference request failed"
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is a 2xx answer that does not describe a prediction
type MalformedResponseError struct {
	Reason string
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed inference response: %s: %v", e.Reason, e.Cause)
	}
	return "malformed inference response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
