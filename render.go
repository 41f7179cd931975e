package erroz

import (
	"fmt"
	"regexp"
)

// Renderer turns a message template and per-instance data into a message.
//
// A Renderer is configured once through WithRenderer and receives the raw
// template and data of every instance created by classes using it. It may
// implement any templating syntax and decorate the result freely.
type Renderer func(template string, data Data) string

var placeholderPattern = regexp.MustCompile(`%\w+`)

// DefaultRenderer replaces every %identifier placeholder in template with
// the value stored under identifier in data.
//
// Placeholders without a matching key render as the literal "undefined".
// Keys holding nil render as "null". Other values are formatted with
// fmt.Sprint. Unknown placeholders never cause an error.
//
// Example:
//
//	erroz.DefaultRenderer("%resource (%id) not found", erroz.Data{"resource": "User", "id": 1})
//	// "User (1) not found"
func DefaultRenderer(template string, data Data) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		value, ok := data[match[1:]]
		switch {
		case !ok:
			return "undefined"
		case value == nil:
			return "null"
		default:
			return fmt.Sprint(value)
		}
	})
}
