package erroz

import "errors"

// StatusCodeOf returns the status code of the first *Error in err's chain.
// Returns DefaultStatusCode if err is nil or carries no *Error.
//
// Example:
//
//	w.WriteHeader(erroz.StatusCodeOf(err))
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.StatusCode
	}
	return DefaultStatusCode
}

// StatusOf returns the JSend status of the first JSender in err's chain.
// Returns StatusError if err is nil or carries no JSend identity.
func StatusOf(err error) Status {
	var js JSender
	if errors.As(err, &js) {
		return js.JSend().Status
	}
	return StatusError
}
