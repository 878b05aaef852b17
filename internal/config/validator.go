package config

import (
	"fmt"

	trunkhttp "github.com/trunkhttp/trunk/http"
)

// ValidationError represents a suite validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks a suite and returns every problem found.
func Validate(suite *Suite) []ValidationError {
	var errors []ValidationError

	if len(suite.Requests) == 0 {
		errors = append(errors, ValidationError{
			Path:    "requests",
			Message: "at least one request is required",
		})
	}

	for i, req := range suite.Requests {
		path := fmt.Sprintf("requests[%d]", i)
		if req.Name != "" {
			path = fmt.Sprintf("requests.%s", req.Name)
		}

		if req.URL == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".url",
				Message: "url is required",
			})
		}

		if req.Method == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".method",
				Message: "method is required",
			})
		} else if !trunkhttp.IsSupportedMethod(req.Method) {
			errors = append(errors, ValidationError{
				Path:    path + ".method",
				Message: fmt.Sprintf("unsupported method %q", req.Method),
			})
		}

		if req.Timeout < 0 {
			errors = append(errors, ValidationError{
				Path:    path + ".timeout",
				Message: "timeout must not be negative",
			})
		}
	}

	return errors
}
