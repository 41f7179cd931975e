package erroz

import (
	"encoding/json"
	"errors"

	platformerrors "github.com/jmgilman/go/errors"
)

// Response is the JSend representation of an error.
//
// The HTTP-style status code is intentionally absent: only the derived
// coarse status is part of the payload.
type Response struct {
	// Status is "success", "fail" or "error".
	Status Status `json:"status"`

	// Code is the machine readable code of the error kind.
	Code string `json:"code"`

	// Message is the human readable message.
	Message string `json:"message"`

	// Data is the instance metadata.
	Data Data `json:"data"`
}

// JSend returns r itself, so decoded responses can be matched like errors.
func (r Response) JSend() Response {
	return r
}

// JSender is implemented by values that have a JSend representation.
type JSender interface {
	JSend() Response
}

// unknownCode is reported by ToJSend for errors that carry no JSend identity.
const unknownCode = "internal-error"

// ToJSend converts any error to a Response suitable for an API payload.
// Returns nil if err is nil.
//
// The first JSender in the error chain provides the response. Other errors
// are reported with StatusError, code "internal-error" and err.Error() as
// the message.
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(erroz.StatusCodeOf(err))
//	    json.NewEncoder(w).Encode(erroz.ToJSend(err))
//	}
func ToJSend(err error) *Response {
	if err == nil {
		return nil
	}

	var js JSender
	if errors.As(err, &js) {
		r := js.JSend()
		return &r
	}

	return &Response{
		Status:  StatusError,
		Code:    unknownCode,
		Message: err.Error(),
		Data:    Data{},
	}
}

// MarshalJSON implements json.Marshaler.
// An instance marshals to its JSend representation:
//
//	{"status":"fail","code":"not-found","message":"User (1) not found","data":{"id":1,"resource":"User"}}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.JSend())
	if err != nil {
		// Data may hold values encoding/json cannot represent.
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
