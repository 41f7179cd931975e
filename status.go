package erroz

import platformerrors "github.com/jmgilman/go/errors"

// Status is the coarse JSend classification of an error kind.
// Status values are strings for natural JSON serialization.
type Status string

const (
	// StatusSuccess is derived from 2xx status codes.
	StatusSuccess Status = "success"

	// StatusFail is derived from 4xx status codes.
	// It indicates a problem with the request or the data submitted.
	StatusFail Status = "fail"

	// StatusError is derived from 5xx status codes.
	// It indicates a problem while processing an otherwise valid request.
	StatusError Status = "error"
)

// DefaultStatusCode is used when a definition does not set a status code.
const DefaultStatusCode = 500

// Valid reports whether s is one of the three JSend statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusFail, StatusError:
		return true
	default:
		return false
	}
}

// String returns the status as a plain string.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts s into a Status.
// Returns an error coded CodeInvalidInput if s is not "success", "fail" or
// "error".
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", platformerrors.Newf(platformerrors.CodeInvalidInput, "invalid status %q", s)
	}
	return status, nil
}

// DeriveStatus maps an HTTP-style status code to its JSend status.
//
//   - 200-299: StatusSuccess
//   - 400-499: StatusFail
//   - 500-599: StatusError
//
// Any other code is not derivable and returns ("", false).
func DeriveStatus(statusCode int) (Status, bool) {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return StatusSuccess, true
	case statusCode >= 400 && statusCode < 500:
		return StatusFail, true
	case statusCode >= 500 && statusCode < 600:
		return StatusError, true
	default:
		return "", false
	}
}

// StatusDerivable reports whether DeriveStatus can classify statusCode.
func StatusDerivable(statusCode int) bool {
	_, ok := DeriveStatus(statusCode)
	return ok
}
