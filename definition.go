package erroz

import (
	"bytes"

	platformerrors "github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

// Data is the per-instance metadata attached to an error.
// It is used to render message templates and is serialized as the JSend
// "data" object.
type Data map[string]any

// MessageFunc computes an instance message from its data.
type MessageFunc func(data Data) string

// Definition declares an error kind.
//
// Name and one message source are required. Message is used verbatim,
// Template is rendered with the configured Renderer and MessageFunc is
// called with the instance data. When several sources are set, MessageFunc
// wins over Message, which wins over Template.
//
// Code defaults to the slug of Name. StatusCode defaults to
// DefaultStatusCode and Status is derived from it unless set explicitly.
type Definition struct {
	Name        string      `yaml:"name" json:"name"`
	Message     string      `yaml:"message,omitempty" json:"message,omitempty"`
	Template    string      `yaml:"template,omitempty" json:"template,omitempty"`
	MessageFunc MessageFunc `yaml:"-" json:"-"`
	Code        string      `yaml:"code,omitempty" json:"code,omitempty"`
	Status      Status      `yaml:"status,omitempty" json:"status,omitempty"`
	StatusCode  *int        `yaml:"statusCode,omitempty" json:"statusCode,omitempty"`
}

// Int returns a pointer to v, for use as Definition.StatusCode.
func Int(v int) *int {
	return &v
}

func (d *Definition) hasMessage() bool {
	return d.MessageFunc != nil || d.Template != "" || d.Message != ""
}

// ParseDefinition decodes a definition from YAML or JSON.
//
// Recognized keys are name, message, template, code, status and statusCode.
// Unknown keys are rejected. The result is not validated; pass it to Define.
//
// Example:
//
//	def, err := erroz.ParseDefinition([]byte(`
//	name: NotFound
//	statusCode: 404
//	template: "%resource (%id) not found"
//	`))
func ParseDefinition(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "failed to parse error definition")
	}

	return &def, nil
}
