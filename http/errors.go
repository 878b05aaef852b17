package http

import "fmt"

// UnsupportedMethodError is returned when a request names a verb outside the
// supported set. It is raised before any network activity.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method: %s", e.Method)
}

// RequestError wraps a transport-level failure: DNS resolution, connect,
// timeout or protocol errors.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// BodyError is returned when a response arrived but its body could not be
// decoded as text.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("response body error: %v", e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// JSONError is returned by Response.JSON when the body is not valid JSON.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("JSON parse error: %v", e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}
