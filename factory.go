package erroz

// Factory defines error classes that share one set of Options.
//
// A Factory replaces a process-wide configuration hook: create it once at
// startup with the renderer and flags the application needs, then define
// every error kind through it. A Factory is immutable and safe for
// concurrent use. Classes copy the options when they are defined, so the
// configuration cannot change underneath existing classes.
type Factory struct {
	opts Options
}

// NewFactory creates a Factory configured with opts.
func NewFactory(opts ...Option) *Factory {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Renderer == nil {
		o.Renderer = DefaultRenderer
	}
	return &Factory{opts: *o}
}

// Define validates def and returns the class it describes.
//
// Validation stops at the first problem and returns a *ConfigError:
//
//  1. def is nil
//  2. Name is empty
//  3. none of Message, Template or MessageFunc is set
//  4. Status is empty and StatusCode is set outside 2xx, 4xx and 5xx
//  5. Status is set but is not a valid Status
//  6. Code is empty and Name has no letters or digits to derive it from
//
// Defaults are resolved once here: Code from the slug of Name, StatusCode
// from DefaultStatusCode and Status from StatusCode.
func (f *Factory) Define(def *Definition) (*Class, error) {
	if def == nil {
		return nil, errMissingOptions()
	}
	if def.Name == "" {
		return nil, errMissingName()
	}
	if !def.hasMessage() {
		return nil, errMissingMessage()
	}
	if def.Status == "" && def.StatusCode != nil && !StatusDerivable(*def.StatusCode) {
		return nil, errUnderivableStatus(*def.StatusCode)
	}
	if def.Status != "" && !def.Status.Valid() {
		return nil, errInvalidStatus(def.Status)
	}

	code := def.Code
	if code == "" {
		code = SlugifyLanguage(def.Name, f.opts.Language)
		if code == "" {
			return nil, errUnderivableCode(def.Name)
		}
	}

	statusCode := DefaultStatusCode
	if def.StatusCode != nil {
		statusCode = *def.StatusCode
	}

	status := def.Status
	if status == "" {
		status, _ = DeriveStatus(statusCode)
	}

	return &Class{
		name:        def.Name,
		code:        code,
		status:      status,
		statusCode:  statusCode,
		message:     def.Message,
		template:    def.Template,
		messageFunc: def.MessageFunc,
		opts:        f.opts,
	}, nil
}

// MustDefine is like Define but panics if the definition is invalid.
// It is intended for package level variables.
func (f *Factory) MustDefine(def *Definition) *Class {
	class, err := f.Define(def)
	if err != nil {
		panic(err)
	}
	return class
}

// Define validates def and returns the class it describes, using a
// Factory configured with opts. See Factory.Define.
//
// Example:
//
//	var ErrNotFound, _ = erroz.Define(&erroz.Definition{
//	    Name:       "NotFound",
//	    StatusCode: erroz.Int(404),
//	    Template:   "%resource (%id) not found",
//	})
func Define(def *Definition, opts ...Option) (*Class, error) {
	return NewFactory(opts...).Define(def)
}

// MustDefine is like Define but panics if the definition is invalid.
//
// Example:
//
//	var ErrDuplicate = erroz.MustDefine(&erroz.Definition{
//	    Name:       "Duplicate",
//	    StatusCode: erroz.Int(409),
//	    Message:    "Resource already exists",
//	})
func MustDefine(def *Definition, opts ...Option) *Class {
	return NewFactory(opts...).MustDefine(def)
}
