package erroz

import (
	"fmt"
	"io"
)

// Error is one raised instance of an error kind.
//
// The identity fields are copied from the Class when the instance is
// created. They are exported so transport layers can read them directly;
// assigning to them only changes this instance.
type Error struct {
	// Name is the name of the error kind.
	Name string

	// Code is the machine readable code of the error kind.
	Code string

	// Status is the JSend status of the error kind.
	Status Status

	// StatusCode is the HTTP-style status code. It is not part of the
	// JSend output.
	StatusCode int

	// Message is the resolved, human readable message.
	Message string

	// Data is the metadata supplied when the instance was created.
	Data Data

	stack        string
	includeStack bool
}

// Error returns "Name: message".
func (e *Error) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// Stack returns the stack trace captured when the instance was created.
//
// The first line is "Name: message" as of creation. Each following line is
// a call frame of the form "    at function (file:line)", starting with the
// code that called Class.New or Class.NewMessage.
func (e *Error) Stack() string {
	return e.stack
}

// Format implements fmt.Formatter.
// The %+v verb prints the stack trace; %v and %s print Error().
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.stack != "" {
			_, _ = io.WriteString(s, e.stack)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// JSend returns the JSend representation of the instance.
//
// If the class was defined with WithIncludeStack(true), the stack trace is
// added as "stack" to a copy of Data.
func (e *Error) JSend() Response {
	data := e.Data
	if e.includeStack && e.stack != "" {
		data = make(Data, len(e.Data)+1)
		for k, v := range e.Data {
			data[k] = v
		}
		data["stack"] = e.stack
	}
	if data == nil {
		data = Data{}
	}

	return Response{
		Status:  e.Status,
		Code:    e.Code,
		Message: e.Message,
		Data:    data,
	}
}
