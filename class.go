package erroz

import (
	"errors"
	"maps"
)

// Class is a reusable constructor for one error kind.
//
// A Class is created by Define and never changes afterwards. Its identity
// (name, code, status and status code) is copied into every instance it
// creates.
type Class struct {
	name        string
	code        string
	status      Status
	statusCode  int
	message     string
	template    string
	messageFunc MessageFunc
	opts        Options
}

// Name returns the name of the error kind.
func (c *Class) Name() string {
	return c.name
}

// Code returns the machine readable code of the error kind.
func (c *Class) Code() string {
	return c.code
}

// Status returns the JSend status of the error kind.
func (c *Class) Status() Status {
	return c.status
}

// StatusCode returns the HTTP-style status code of the error kind.
func (c *Class) StatusCode() int {
	return c.statusCode
}

// String returns the name of the error kind.
func (c *Class) String() string {
	return c.name
}

// New creates an instance carrying data.
//
// The message is computed from the definition: MessageFunc is called with
// data, Message is used as is, otherwise Template is rendered with the
// configured Renderer. A panic raised while computing the message propagates to
// the caller. A nil data is stored as an empty Data. The map is copied, so
// later changes by the caller do not affect the instance.
//
// Example:
//
//	return ErrNotFound.New(erroz.Data{"resource": "User", "id": id})
func (c *Class) New(data Data) *Error {
	return c.construct(data, "", false)
}

// NewMessage creates an instance with an explicit message and empty data.
// The definition's message is ignored.
func (c *Class) NewMessage(message string) *Error {
	return c.construct(nil, message, true)
}

// construct must be called directly from New or NewMessage: the captured
// stack starts at that frame, which SanitizeStack then removes.
func (c *Class) construct(data Data, message string, override bool) *Error {
	if data == nil {
		data = Data{}
	} else {
		data = maps.Clone(data)
	}

	if !override {
		message = c.render(data)
	}

	e := &Error{
		Name:         c.name,
		Code:         c.code,
		Status:       c.status,
		StatusCode:   c.statusCode,
		Message:      message,
		Data:         data,
		includeStack: c.opts.IncludeStack,
	}
	// Only the frame lines are sanitized; the header may span several lines.
	e.stack = e.Error() + SanitizeStack(formatFrames(callers(1)))

	return e
}

func (c *Class) render(data Data) string {
	switch {
	case c.messageFunc != nil:
		return c.messageFunc(data)
	case c.message != "":
		return c.message
	default:
		return c.opts.Renderer(c.template, data)
	}
}

// Matches reports whether candidate structurally represents this error kind.
//
// Matching compares code and status rather than Go types, so it also works
// for values that crossed a serialization boundary:
//
//   - *Error, Response, *Response and any JSender compare their JSend code
//     and status.
//   - map[string]any and Data, such as decoded JSON, must hold string
//     "status", "code" and "message" values and an object "data" value.
//   - an error matches if the first JSender in its chain matches.
//
// Anything else, including nil, does not match.
func (c *Class) Matches(candidate any) bool {
	switch v := candidate.(type) {
	case nil:
		return false
	case *Error:
		return v != nil && c.is(v.Code, v.Status)
	case *Response:
		return v != nil && c.is(v.Code, v.Status)
	case Response:
		return c.is(v.Code, v.Status)
	case map[string]any:
		return c.matchesMap(v)
	case Data:
		return c.matchesMap(v)
	case JSender:
		r := v.JSend()
		return c.is(r.Code, r.Status)
	case error:
		var js JSender
		if errors.As(v, &js) {
			return c.Matches(js)
		}
		return false
	default:
		return false
	}
}

func (c *Class) is(code string, status Status) bool {
	return code == c.code && status == c.status
}

func (c *Class) matchesMap(m map[string]any) bool {
	status, ok := m["status"].(string)
	if !ok {
		return false
	}
	code, ok := m["code"].(string)
	if !ok {
		return false
	}
	if _, ok := m["message"].(string); !ok {
		return false
	}
	switch m["data"].(type) {
	case map[string]any, Data:
	default:
		return false
	}
	return c.is(code, Status(status))
}
